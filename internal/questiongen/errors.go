package questiongen

import "fmt"

// ErrGeneration indicates the question-generation call returned unusable
// content. The caller must not advance phase or record a partial question;
// retrying the same request is safe.
type ErrGeneration struct {
	Reason string
	Err    error
}

func (e *ErrGeneration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("question generation failed: %s", e.Reason)
}

func (e *ErrGeneration) Unwrap() error {
	return e.Err
}
