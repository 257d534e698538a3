package models

import (
	"strings"
	"unicode/utf8"

	dErrors "user-registry/pkg/domain-errors"
	"user-registry/pkg/israeliid"
	"user-registry/pkg/phone"
)

// Field limits enforced on every write.
const (
	MaxNameLength    = 100
	MaxAddressLength = 255
)

// User is a registered person keyed by Israeli national ID. The ID is set at
// creation and never changes; name, phone, and address are mutable.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewUser validates all fields and returns a User ready for persistence.
func NewUser(id, name, phoneNumber, address string) (*User, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidatePhone(phoneNumber); err != nil {
		return nil, err
	}
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return &User{ID: id, Name: name, Phone: phoneNumber, Address: address}, nil
}

// ValidateID checks that id is a checksum-valid Israeli national ID.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if !israeliid.IsValid(id) {
		return dErrors.New(dErrors.CodeValidation, "id must be a valid israeli id (5-9 digits, valid checksum)")
	}
	return nil
}

// ValidateName checks the name requiredness and length constraint.
func ValidateName(name string) error {
	if name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	// Limits count characters, not bytes; Hebrew names are two bytes per rune.
	if utf8.RuneCountInString(name) > MaxNameLength {
		return dErrors.New(dErrors.CodeValidation, "name must be at most 100 characters")
	}
	return nil
}

// ValidatePhone checks that the phone number is a possible and valid
// international number in E.164 form.
func ValidatePhone(phoneNumber string) error {
	if phoneNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "phone is required")
	}
	if !phone.IsValid(phoneNumber) {
		return dErrors.New(dErrors.CodeValidation, "phone must be a valid international number (e.g. +972...)")
	}
	return nil
}

// ValidateAddress checks the address requiredness and length constraint.
func ValidateAddress(address string) error {
	if address == "" {
		return dErrors.New(dErrors.CodeValidation, "address is required")
	}
	if utf8.RuneCountInString(address) > MaxAddressLength {
		return dErrors.New(dErrors.CodeValidation, "address must be at most 255 characters")
	}
	return nil
}
