package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			in:   `{"action":"hold"}`,
			want: `{"action":"hold"}`,
			ok:   true,
		},
		{
			name: "fenced with language tag",
			in:   "Here is my vote:\n```json\n{\"action\":\"cut\",\"magnitude\":25}\n```",
			want: `{"action":"cut","magnitude":25}`,
			ok:   true,
		},
		{
			name: "surrounding prose",
			in:   `After careful consideration {"action":"raise","magnitude":25} is my view.`,
			want: `{"action":"raise","magnitude":25}`,
			ok:   true,
		},
		{
			name: "braces inside strings ignored",
			in:   `{"reasoning":"risks {both ways}","action":"hold"}`,
			want: `{"reasoning":"risks {both ways}","action":"hold"}`,
			ok:   true,
		},
		{
			name: "nested object",
			in:   `{"a":{"b":1},"c":2}`,
			want: `{"a":{"b":1},"c":2}`,
			ok:   true,
		},
		{
			name: "unterminated",
			in:   `{"action":"hold"`,
			ok:   false,
		},
		{
			name: "empty",
			in:   "   ",
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractObject(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestExtractArray(t *testing.T) {
	got, ok := ExtractArray("```\n[1, 2, 3]\n```")
	assert.True(t, ok)
	assert.Equal(t, "[1, 2, 3]", got)

	_, ok = ExtractArray(`{"no":"array"}`)
	assert.False(t, ok)
}
