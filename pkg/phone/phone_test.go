package phone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"israeli mobile", "+972501234567", true},
		{"israeli landline", "+97286123456", true},
		{"us number", "+12025550123", true},
		{"missing country code", "0501234567", false},
		{"letters", "abcdefg", false},
		{"empty", "", false},
		{"plus only", "+", false},
		{"too short for region", "+97250", false},
		{"too long", "+9725012345678901234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.raw))
		})
	}
}

func TestRandomIsraeliNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		num := RandomIsraeliNumber()
		assert.True(t, strings.HasPrefix(num, "+972"), "expected +972 prefix, got %s", num)
		assert.True(t, IsValid(num), "generated number %s failed validation", num)
	}
}
