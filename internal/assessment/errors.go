package assessment

import "fmt"

// ErrInvalidInput indicates a malformed response record or a missing
// required field. Callers report it immediately and do not advance the
// assessment.
type ErrInvalidInput struct {
	Field  string
	Index  int // response index when applicable, -1 otherwise
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input: response %d: %s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// ValidateResponses checks that every response carries a question, an
// answer, and the option list it was presented with. Returns the first
// violation as *ErrInvalidInput.
func ValidateResponses(responses []Response) error {
	for i, r := range responses {
		if r.Question == "" {
			return &ErrInvalidInput{Field: "question", Index: i, Reason: "must not be empty"}
		}
		if r.Answer == "" {
			return &ErrInvalidInput{Field: "answer", Index: i, Reason: "must not be empty"}
		}
		if len(r.QuestionData.Options) == 0 {
			return &ErrInvalidInput{Field: "questionData.options", Index: i, Reason: "must not be empty"}
		}
	}
	return nil
}
