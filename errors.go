package veostudio

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indicates no API key is available. Nothing else
	// may proceed until one is provided.
	ErrMissingCredential = errors.New("missing api credential")

	// ErrMissingInput indicates a required title or idea was empty at
	// submission time. No request is issued.
	ErrMissingInput = errors.New("title and idea are required")
)

// Structuring stages at which a failure can occur.
const (
	StageRequest  = "request"
	StageDecode   = "decode"
	StageValidate = "validate"
)

// StructureError wraps any failure of a structuring call. It is the single
// recoverable error the Structurer reports; session state is never modified
// when one is returned.
type StructureError struct {
	Stage string
	Err   error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structuring failed (%s): %v", e.Stage, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
