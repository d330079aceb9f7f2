package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCountryName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"tell me about", "tell me about Japan", "Japan"},
		{"information on", "information on Kenya", "Kenya"},
		{"what about", "what about Brazil", "Brazil"},
		{"about", "about Norway", "Norway"},
		{"bare country name", "Japan", "Japan"},
		{"multi word country", "tell me about New Zealand", "New Zealand"},
		{"case insensitive prefix", "Tell Me About Japan", "Japan"},
		{"trailing punctuation", "tell me about Japan?!", "Japan"},
		{"surrounding whitespace", "  tell me about Japan  ", "Japan"},
		{"prefix applied once", "tell me about about", "about"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractCountryName(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractCountryNameNotRecognized(t *testing.T) {
	for _, input := range []string{"", "   ", "tell me about ?!.,", "about ?"} {
		_, err := ExtractCountryName(input)
		assert.ErrorIs(t, err, ErrNotRecognized, "input %q", input)
	}
}
