package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchUserRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantIncluded bool
		wantName     *string
	}{
		{
			name:         "id absent",
			body:         `{"name":"Noa Levi"}`,
			wantIncluded: false,
			wantName:     ptr("Noa Levi"),
		},
		{
			name:         "id present",
			body:         `{"id":"123456782","name":"Noa Levi"}`,
			wantIncluded: true,
			wantName:     ptr("Noa Levi"),
		},
		{
			name:         "id null still counts as present",
			body:         `{"id":null}`,
			wantIncluded: true,
			wantName:     nil,
		},
		{
			name:         "empty body",
			body:         `{}`,
			wantIncluded: false,
			wantName:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PatchUserRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantIncluded, req.IDIncluded)
			assert.Equal(t, tt.wantName, req.Name)
		})
	}
}

func TestReplaceUserRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantIncluded bool
		wantID       *string
	}{
		{
			name:         "id absent",
			body:         `{"name":"Noa Levi","phone":"+972501234567","address":"Tel Aviv"}`,
			wantIncluded: false,
			wantID:       nil,
		},
		{
			name:         "id present",
			body:         `{"id":"123456782","name":"Noa Levi"}`,
			wantIncluded: true,
			wantID:       ptr("123456782"),
		},
		{
			name:         "id null still counts as present",
			body:         `{"id":null,"name":"Noa Levi"}`,
			wantIncluded: true,
			wantID:       nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ReplaceUserRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantIncluded, req.IDIncluded)
			assert.Equal(t, tt.wantID, req.ID)
		})
	}
}

func TestPatchUserRequest_UnmarshalJSON_Invalid(t *testing.T) {
	var req PatchUserRequest
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &req))
}

func TestCreateUserRequest_Normalize(t *testing.T) {
	req := CreateUserRequest{
		ID:      "  123456782 ",
		Name:    " Noa Levi ",
		Phone:   " +972501234567 ",
		Address: " 12 Herzl St ",
	}
	req.Normalize()
	assert.Equal(t, "123456782", req.ID)
	assert.Equal(t, "Noa Levi", req.Name)
	assert.Equal(t, "+972501234567", req.Phone)
	assert.Equal(t, "12 Herzl St", req.Address)
}

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr string
	}{
		{"missing id", CreateUserRequest{Name: "a", Phone: "b", Address: "c"}, "id is required"},
		{"missing name", CreateUserRequest{ID: "1", Phone: "b", Address: "c"}, "name is required"},
		{"missing phone", CreateUserRequest{ID: "1", Name: "a", Address: "c"}, "phone is required"},
		{"missing address", CreateUserRequest{ID: "1", Name: "a", Phone: "b"}, "address is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func ptr(s string) *string {
	return &s
}
