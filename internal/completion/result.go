package completion

// FailureText is what a failed Result displays in place of generated text
const FailureText = "Error"

// Result is the outcome of one completion: either the trimmed model text or
// a typed failure. Callers branch on OK, never on the text.
type Result struct {
	text string
	err  *Error
}

// Success wraps generated text
func Success(text string) Result {
	return Result{text: text}
}

// Failure wraps a completion error
func Failure(err *Error) Result {
	if err == nil {
		err = &Error{Kind: KindTransport}
	}
	return Result{err: err}
}

// OK reports whether the completion succeeded
func (r Result) OK() bool {
	return r.err == nil
}

// Text returns the generated text, or FailureText for failures
func (r Result) Text() string {
	if r.err != nil {
		return FailureText
	}
	return r.text
}

// Err returns the failure, or nil on success
func (r Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}
