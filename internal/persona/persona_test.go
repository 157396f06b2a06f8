package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownPersonas(t *testing.T) {
	seen := make(map[string]ID)

	for _, id := range []ID{Health, Tech, History} {
		t.Run(string(id), func(t *testing.T) {
			got := Resolve(string(id))
			require.NotEmpty(t, got)
			assert.NotEqual(t, FallbackInstruction, got)

			if other, dup := seen[got]; dup {
				t.Errorf("instruction for %s duplicates %s", id, other)
			}
			seen[got] = id
		})
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "unknown", id: "lawyer"},
		{name: "wrong case", id: "Health"},
		{name: "display name", id: "Health & Medical Expert"},
		{name: "padded", id: " tech "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, FallbackInstruction, Resolve(tt.id))
		})
	}
}

func TestDefaultIsFirst(t *testing.T) {
	assert.Equal(t, Health, Default().ID)
	assert.Equal(t, []string{"health", "tech", "history"}, IDs())
}

func TestGet(t *testing.T) {
	p := Get("history")
	require.NotNil(t, p)
	assert.Equal(t, "History & Culture Expert", p.Name)

	assert.Nil(t, Get("astrology"))
}
