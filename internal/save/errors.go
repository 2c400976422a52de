package save

import (
	"errors"
	"fmt"
)

// ErrDecode matches every *DecodeError.
var ErrDecode = errors.New("decode save")

// ErrNotFound is returned when a repository holds no matching save.
var ErrNotFound = errors.New("save not found")

// Stage names the decoding step that failed.
type Stage string

const (
	StageBase64  Stage = "base64"
	StageUTF8    Stage = "utf8"
	StageJSON    Stage = "json"
	StageMigrate Stage = "migrate"
)

// DecodeError reports a save that could not be read back.
type DecodeError struct {
	Stage Stage
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode save (%s): %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode or a DecodeError at the same stage.
func (e *DecodeError) Is(target error) bool {
	if target == ErrDecode {
		return true
	}
	if t, ok := target.(*DecodeError); ok {
		return t.Stage == e.Stage
	}
	return false
}

func decodeErr(stage Stage, err error) error {
	return &DecodeError{Stage: stage, Err: err}
}
