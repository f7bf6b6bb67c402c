package main

import (
	"os"

	"github.com/dayoumin/mbti-sub003/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
