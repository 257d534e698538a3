// Package testutil provides common test utilities for handler and
// integration tests.
package testutil

import (
	"testing"

	"user-registry/internal/user/models"
	"user-registry/pkg/israeliid"
	"user-registry/pkg/phone"
)

// NewTestUser builds a user with a freshly generated national ID and a random
// valid Israeli phone number. Fails the test if generation fails.
func NewTestUser(t testing.TB) *models.User {
	t.Helper()

	id, err := israeliid.Generate()
	if err != nil {
		t.Fatalf("generate national id: %v", err)
	}
	u, err := models.NewUser(id, "Test User", phone.RandomIsraeliNumber(), "1 Test St, Testville")
	if err != nil {
		t.Fatalf("build test user: %v", err)
	}
	return u
}
