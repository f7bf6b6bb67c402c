package session

import (
	sess "github.com/dayoumin/mbti-sub003/internal/session"
)

// attemptSavedMsg is sent once a finished attempt has been persisted.
// Err is set when saving failed; the result is still shown.
type attemptSavedMsg struct {
	Summary *sess.Summary
	Err     error
}

// attemptFailedMsg is sent when scoring the attempt fails.
type attemptFailedMsg struct {
	Err error
}
