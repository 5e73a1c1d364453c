// Package models lists the models served by an OpenAI-compatible endpoint
// and groups them so users can pick one for completion.model.
package models
