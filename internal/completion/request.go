package completion

const (
	DefaultMaxTokens   = 100
	DefaultTemperature = 0.7
)

// Request is a single generation request. Sampling parameters other than
// max tokens and temperature come from config and are not per-request.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// NewRequest returns a request with default generation parameters
func NewRequest(prompt string) Request {
	return Request{
		Prompt:      prompt,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// WithMaxTokens returns a copy with max tokens set
func (r Request) WithMaxTokens(n int) Request {
	r.MaxTokens = n
	return r
}

// WithTemperature returns a copy with temperature set
func (r Request) WithTemperature(t float64) Request {
	r.Temperature = t
	return r
}

// normalized fills unset fields with defaults. Temperature is not bounds
// checked; zero is treated as unset.
func (r Request) normalized() Request {
	if r.MaxTokens <= 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	if r.Temperature == 0 {
		r.Temperature = DefaultTemperature
	}
	return r
}
