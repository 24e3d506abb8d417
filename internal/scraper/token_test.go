package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTokenJSONPattern(t *testing.T) {
	body := []byte(`<script>window.app = {"api":{"token":"Abc123XYZ"}};</script>`)

	token, found := ExtractToken(body)
	assert.True(t, found)
	assert.Equal(t, "Abc123XYZ", token)
}

func TestExtractTokenJSONPatternWithSpaces(t *testing.T) {
	body := []byte(`{"token" : "T0ken"}`)

	token, found := ExtractToken(body)
	assert.True(t, found)
	assert.Equal(t, "T0ken", token)
}

func TestExtractTokenQueryFallback(t *testing.T) {
	body := []byte(`<a href="https://api.example.com/search?market=fr&token=Fallback42">prices</a>`)

	token, found := ExtractToken(body)
	assert.True(t, found)
	assert.Equal(t, "Fallback42", token)
}

func TestExtractTokenJSONPatternWins(t *testing.T) {
	// Both patterns present: the JSON-style one must win
	body := []byte(`{"token":"Primary1"} <a href="?token=Secondary2">x</a>`)

	token, found := ExtractToken(body)
	assert.True(t, found)
	assert.Equal(t, "Primary1", token)
}

func TestExtractTokenNotFound(t *testing.T) {
	body := []byte(`<html><body>no credentials here</body></html>`)

	token, found := ExtractToken(body)
	assert.False(t, found)
	assert.Equal(t, "", token)
}
