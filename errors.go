// SPDX-License-Identifier: EPL-2.0

package wavqc

import (
	"errors"
	"fmt"
)

var (
	ErrIO = errors.New("i/o failure")
)

// Stage names the step of document construction that failed.
type Stage string

const (
	StageIO     Stage = "io"
	StageRiff   Stage = "riff"
	StageFormat Stage = "fmt"
	StageData   Stage = "data"
)

// StageError is returned by Read and Load. Err wraps the stage sentinel:
// wav.ErrRiffInvalid, wav.ErrFormatUnsupported, wav.ErrDataChunkInvalid or
// ErrIO.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
