package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "out.png", false},
		{"absolute file", "/tmp/out.png", false},
		{"stdout", "-", false},
		{"nested", "exports/2024/out.jpeg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 1100), true},
		{"null byte", "out\x00.png", true},
		{"newline", "out\n.png", true},
		{"directory", "exports/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "ValidateOutputPath(%q) error = %v", tt.input, err)
			if err != nil {
				assert.True(t, Is(err, ErrCodeInvalidInput))
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#ff0000", false},
		{"#F00", false},
		{"#00ff7A", false},
		{"ff0000", true},
		{"#ff00", true},
		{"#gg0000", true},
		{"red", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
