// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray_BareArray(t *testing.T) {
	payload, err := ExtractJSONArray(`[{"query": "a"}, {"query": "b"}]`)
	require.NoError(t, err)
	assert.Equal(t, `[{"query": "a"}, {"query": "b"}]`, payload)
}

func TestExtractJSONArray_SurroundingWhitespace(t *testing.T) {
	payload, err := ExtractJSONArray("\n  [{\"k\": 1}]  \n")
	require.NoError(t, err)
	assert.Equal(t, `[{"k": 1}]`, payload)
}

func TestExtractJSONArray_FencedWithTag(t *testing.T) {
	text := "Here are the queries:\n```json\n[{\"query\": \"x\"}]\n```\nLet me know!"
	payload, err := ExtractJSONArray(text)
	require.NoError(t, err)
	assert.Equal(t, `[{"query": "x"}]`, payload)
}

func TestExtractJSONArray_FencedWithoutTag(t *testing.T) {
	text := "```\n[{\"query\": \"y\"}]\n```"
	payload, err := ExtractJSONArray(text)
	require.NoError(t, err)
	assert.Equal(t, `[{"query": "y"}]`, payload)
}

func TestExtractJSONArray_EmbeddedInProse(t *testing.T) {
	text := `Sure! The databases I recommend are [{"database": "arXiv", "reason": "preprints"}] based on your questions.`
	payload, err := ExtractJSONArray(text)
	require.NoError(t, err)
	assert.Equal(t, `[{"database": "arXiv", "reason": "preprints"}]`, payload)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, err := ExtractJSONArray("I could not produce any queries, sorry.")
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSONArray_ObjectIsNotArray(t *testing.T) {
	_, err := ExtractJSONArray(`{"query": "not an array"}`)
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSONArray_InvalidJSONInFence(t *testing.T) {
	_, err := ExtractJSONArray("```json\n[{broken]\n```")
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSONArray_EmptyInput(t *testing.T) {
	_, err := ExtractJSONArray("")
	assert.ErrorIs(t, err, ErrNoJSON)
}
