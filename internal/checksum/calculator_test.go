package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMD5_Sum(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty string",
			content:  "",
			expected: "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:     "Known value",
			content:  "abc",
			expected: "900150983cd24fb0d6963f7d28e17f72",
		},
		{
			name:    "Function body",
			content: " return 1; ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Sum([]byte(tt.content))

			assert.Len(t, result, DigestLength)
			assert.True(t, IsDigest(result), "Sum() output must match the digest pattern")

			if tt.expected != "" {
				assert.Equal(t, tt.expected, result)
			}

			// Deterministic, and SumString agrees with Sum
			assert.Equal(t, result, calc.SumString(tt.content))
		})
	}
}

func TestIsDigest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid digest", "d41d8cd98f00b204e9800998ecf8427e", true},
		{"uppercase hex", "D41D8CD98F00B204E9800998ECF8427E", false},
		{"too short", "d41d8cd98f00b204e9800998ecf8427", false},
		{"too long", "d41d8cd98f00b204e9800998ecf8427ef", false},
		{"non-hex characters", "g41d8cd98f00b204e9800998ecf8427e", false},
		{"empty", "", false},
		{"dollar token", "$body$", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDigest(tt.input))
		})
	}
}
