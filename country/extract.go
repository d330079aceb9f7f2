// Package country implements the resolution pipeline of the country facts
// agent: extracting a country name from free text, fetching country data
// from the REST Countries API, and combining it with a generated cultural
// fact into a single formatted answer.
package country

import (
	"strings"
)

// prefixes are the accepted leading phrases, longest first. Anything after a
// matching prefix is treated as the country name. Input with no matching
// prefix is treated as a bare country name.
var prefixes = []string{
	"tell me about ",
	"information on ",
	"what about ",
	"about ",
}

// ExtractCountryName pulls a country name out of free text.
// It supports a small set of fixed patterns ("tell me about X",
// "information on X", "what about X", "X") and returns ErrNotRecognized
// when no country-like token remains. It performs no general NLP.
func ExtractCountryName(text string) (string, error) {
	t := strings.TrimSpace(text)
	low := strings.ToLower(t)

	for _, p := range prefixes {
		if strings.HasPrefix(low, p) {
			t = t[len(p):]
			break
		}
	}

	t = strings.TrimSpace(strings.Trim(strings.TrimSpace(t), "?!.,"))
	if t == "" {
		return "", ErrNotRecognized
	}

	return t, nil
}
