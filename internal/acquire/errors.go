package acquire

import (
	"errors"
	"fmt"
)

// Stage names one step of the pipeline.
type Stage string

const (
	StageTarget    Stage = "target"
	StageVersion   Stage = "version"
	StageClone     Stage = "clone"
	StageConfigure Stage = "configure"
	StageCompile   Stage = "compile"
	StageVerify    Stage = "verify"
)

// StageError reports which stage of which library failed and the command
// it was running.
type StageError struct {
	Library string
	Stage   Stage
	Command string
	Err     error
}

func (e *StageError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("%s: %s failed: %v", e.Library, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %s failed: %s: %v", e.Library, e.Stage, e.Command, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ErrNoArtifact is returned by FindLibrary when neither the canonical path
// nor the glob matches anything.
var ErrNoArtifact = errors.New("library archive not found")

// ErrAborted is returned by Installer.Run when the operator declines to
// continue after a failed install.
var ErrAborted = errors.New("installation aborted")
