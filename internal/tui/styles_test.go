package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "fits", input: "short", maxLen: 10, want: "short"},
		{name: "exact", input: "12345", maxLen: 5, want: "12345"},
		{name: "ascii", input: "a long question", maxLen: 8, want: "a lon..."},
		{name: "tiny limit", input: "abcdef", maxLen: 2, want: "ab"},
		{name: "wide runes", input: "日本の歴史について", maxLen: 9, want: "日本の..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.maxLen))
		})
	}
}
