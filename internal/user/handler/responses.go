package handler

import (
	"user-registry/internal/user/models"
)

// UserResponse is the JSON representation of a user record.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// FromUser converts a domain user to its response form.
func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

// FromUsers converts a list of domain users, preserving order.
func FromUsers(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
