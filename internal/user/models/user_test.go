package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "user-registry/pkg/domain-errors"
)

func TestNewUser_Valid(t *testing.T) {
	u, err := NewUser("123456782", "Noa Levi", "+972501234567", "1 Herzl St, Tel Aviv")
	require.NoError(t, err)
	assert.Equal(t, "123456782", u.ID)
	assert.Equal(t, "Noa Levi", u.Name)
}

func TestValidateName_CountsRunes(t *testing.T) {
	// 60 Hebrew letters are 120 bytes but only 60 characters.
	assert.NoError(t, ValidateName(strings.Repeat("א", 60)))
	assert.NoError(t, ValidateName(strings.Repeat("א", MaxNameLength)))
	assert.Error(t, ValidateName(strings.Repeat("א", MaxNameLength+1)))
}

func TestValidateAddress_CountsRunes(t *testing.T) {
	assert.NoError(t, ValidateAddress(strings.Repeat("ב", MaxAddressLength)))
	assert.Error(t, ValidateAddress(strings.Repeat("ב", MaxAddressLength+1)))
}

func TestNewUser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		user    string
		phone   string
		address string
	}{
		{"bad checksum", "123456780", "Noa", "+972501234567", "Tel Aviv"},
		{"empty id", "", "Noa", "+972501234567", "Tel Aviv"},
		{"empty name", "123456782", "", "+972501234567", "Tel Aviv"},
		{"name too long", "123456782", strings.Repeat("a", MaxNameLength+1), "+972501234567", "Tel Aviv"},
		{"phone without country code", "123456782", "Noa", "0501234567", "Tel Aviv"},
		{"empty phone", "123456782", "Noa", "", "Tel Aviv"},
		{"empty address", "123456782", "Noa", "+972501234567", ""},
		{"address too long", "123456782", "Noa", "+972501234567", strings.Repeat("a", MaxAddressLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.id, tt.user, tt.phone, tt.address)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}
