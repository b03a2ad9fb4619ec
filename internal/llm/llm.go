// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the text-generation capability behind a small client
// interface and provides best-effort extraction of JSON payloads from model
// responses that wrap them in fenced code blocks or prose.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoAPIKey indicates the capability was invoked without a credential.
var ErrNoAPIKey = errors.New("API key not set")

// ErrNoJSON indicates no JSON array could be located in a model response.
// Callers treat this as a recoverable parse failure and degrade to an empty
// result rather than aborting the session.
var ErrNoJSON = errors.New("no JSON array found in response")

// Client is the text-generation capability: an opaque prompt-to-text call.
// Implementations must honor ctx cancellation.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// fencedPattern captures the inside of the first fenced code block,
// with or without a "json" language tag.
var fencedPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// arrayPattern grabs the widest bracketed span holding at least one object.
// A heuristic, not a grammar: it is only consulted after stricter attempts.
var arrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// ExtractJSONArray locates a JSON array inside a model response. It tries,
// in order: the contents of the first fenced code block, the whole trimmed
// response, and finally the first bracketed object-array span found anywhere
// in the text. Returns ErrNoJSON when none of them is a valid JSON array.
func ExtractJSONArray(text string) (string, error) {
	candidate := strings.TrimSpace(text)
	if m := fencedPattern.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	}
	if isJSONArray(candidate) {
		return candidate, nil
	}
	if span := arrayPattern.FindString(text); span != "" && isJSONArray(span) {
		return span, nil
	}
	return "", ErrNoJSON
}

func isJSONArray(s string) bool {
	return strings.HasPrefix(s, "[") && json.Valid([]byte(s))
}
