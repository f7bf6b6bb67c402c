package quiz

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var loadBuiltin = sync.OnceValues(func() ([]*Quiz, error) {
	entries, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)

	quizzes := make([]*Quiz, 0, len(entries))
	for _, name := range entries {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		q, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", path.Base(name), err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
})

// Builtin returns the quizzes shipped with the binary, sorted by file name.
func Builtin() []*Quiz {
	quizzes, err := loadBuiltin()
	if err != nil {
		// Embedded content is checked by tests; a failure here is a build defect.
		panic(err)
	}
	return quizzes
}

// BuiltinByID returns the builtin quiz with the given ID.
func BuiltinByID(id string) (*Quiz, bool) {
	for _, q := range Builtin() {
		if q.ID == id {
			return q, true
		}
	}
	return nil, false
}

// Resolve returns the builtin quiz named ref, or loads ref as a file path.
func Resolve(ref string) (*Quiz, error) {
	if q, ok := BuiltinByID(ref); ok {
		return q, nil
	}
	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("quiz %q is neither a builtin quiz nor a readable file", ref)
	}
	return Load(ref)
}
