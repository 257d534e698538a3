package handler

import (
	"encoding/json"
	"strings"

	dErrors "user-registry/pkg/domain-errors"
)

// CreateUserRequest is the HTTP request body for POST /users/.
type CreateUserRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Normalize trims surrounding whitespace from every field.
func (r *CreateUserRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
}

// Validate checks that every required field is present. Field semantics are
// enforced by the service.
func (r *CreateUserRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.Phone == "" {
		return dErrors.New(dErrors.CodeValidation, "phone is required")
	}
	if r.Address == "" {
		return dErrors.New(dErrors.CodeValidation, "address is required")
	}
	return nil
}

// ReplaceUserRequest is the HTTP request body for PUT /users/{id}/. The id
// field is optional; when present it must equal the id in the path, and a
// null id counts as present. IDIncluded records whether the body carried the
// key at all so a null value is not mistaken for an omitted field.
type ReplaceUserRequest struct {
	IDIncluded bool
	ID         *string
	Name       string
	Phone      string
	Address    string
}

// UnmarshalJSON probes the raw body for an id key before decoding the
// fields, mirroring PatchUserRequest.
func (r *ReplaceUserRequest) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, r.IDIncluded = keys["id"]

	var fields struct {
		ID      *string `json:"id"`
		Name    string  `json:"name"`
		Phone   string  `json:"phone"`
		Address string  `json:"address"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.ID = fields.ID
	r.Name = fields.Name
	r.Phone = fields.Phone
	r.Address = fields.Address
	return nil
}

func (r *ReplaceUserRequest) Normalize() {
	if r.ID != nil {
		trimmed := strings.TrimSpace(*r.ID)
		r.ID = &trimmed
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
}

func (r *ReplaceUserRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.Phone == "" {
		return dErrors.New(dErrors.CodeValidation, "phone is required")
	}
	if r.Address == "" {
		return dErrors.New(dErrors.CodeValidation, "address is required")
	}
	return nil
}

// PatchUserRequest is the HTTP request body for PATCH /users/{id}/. Fields
// left out of the body stay nil and are not applied. IDIncluded records
// whether the body carried an id key at all; a partial update rejects the id
// key outright, so presence has to be distinguished from a zero value.
type PatchUserRequest struct {
	IDIncluded bool
	Name       *string
	Phone      *string
	Address    *string
}

// UnmarshalJSON probes the raw body for an id key before decoding the
// mutable fields. encoding/json cannot distinguish "id": null from an absent
// key, so the probe goes through a raw message map.
func (r *PatchUserRequest) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, r.IDIncluded = keys["id"]

	var fields struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.Name = fields.Name
	r.Phone = fields.Phone
	r.Address = fields.Address
	return nil
}

func (r *PatchUserRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Phone != nil {
		trimmed := strings.TrimSpace(*r.Phone)
		r.Phone = &trimmed
	}
	if r.Address != nil {
		trimmed := strings.TrimSpace(*r.Address)
		r.Address = &trimmed
	}
}
