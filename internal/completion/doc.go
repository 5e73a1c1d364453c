// Package completion sends prompts to a hosted chat completion API. A
// Client wraps one Provider (Together, any OpenAI-compatible endpoint, or
// Gemini) behind a circuit breaker and turns every outcome into a Result,
// so callers never deal with transport errors directly.
package completion
