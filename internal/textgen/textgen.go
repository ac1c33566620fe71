// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package textgen

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when the service answers without text.
	ErrEmptyResponse = errors.New("text generation returned no content")

	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("text generation circuit open")

	// ErrDisabled is returned by the disabled generator.
	ErrDisabled = errors.New("text generation disabled")
)

// Request is one generation call.
type Request struct {
	SystemInstruction string
	UserPrompt        string
	MaxOutputTokens   int
	Temperature       float64
}

// Response carries the generated text.
type Response struct {
	Text string
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// StatusError is a non-2xx answer from the service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("text generation failed with status %d: %s", e.StatusCode, e.Body)
}

// Disabled always fails with ErrDisabled, which sends callers to their fallback.
type Disabled struct{}

// Generate implements Generator.
func (Disabled) Generate(context.Context, Request) (Response, error) {
	return Response{}, ErrDisabled
}
