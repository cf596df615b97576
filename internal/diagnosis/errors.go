package diagnosis

import "fmt"

// ErrProfile indicates reference-profile generation failed or returned a
// shape that would corrupt the vector comparison. It aborts the diagnosis
// computation entirely; no partial ranking is returned.
type ErrProfile struct {
	Reason string
	Err    error
}

func (e *ErrProfile) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reference profile generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("reference profile generation failed: %s", e.Reason)
}

func (e *ErrProfile) Unwrap() error {
	return e.Err
}
