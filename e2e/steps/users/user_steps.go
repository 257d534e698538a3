package users

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any) error
	POST(path string, body any) error
	LastStatus() int
	LastBody() []byte
}

// RegisterSteps registers user-resource step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &userSteps{tc: tc}

	ctx.Step(`^no user exists with id "([^"]*)"$`, steps.ensureAbsent)
	ctx.Step(`^a user exists with id "([^"]*)"$`, steps.ensurePresent)
	ctx.Step(`^I create a user with id "([^"]*)"$`, steps.createUser)
	ctx.Step(`^I create a user with id "([^"]*)" and phone "([^"]*)"$`, steps.createUserWithPhone)
	ctx.Step(`^I replace user "([^"]*)" using body id "([^"]*)"$`, steps.replaceWithBodyID)
	ctx.Step(`^I patch user "([^"]*)" setting address to "([^"]*)"$`, steps.patchAddress)
	ctx.Step(`^I patch user "([^"]*)" including an id field$`, steps.patchWithID)
	ctx.Step(`^I delete user "([^"]*)"$`, steps.deleteUser)
}

type userSteps struct {
	tc TestContext
}

func defaultPayload(id string) map[string]string {
	return map[string]string{
		"id":      id,
		"name":    "Noa Levi",
		"phone":   "+972501234567",
		"address": "12 Herzl St, Tel Aviv",
	}
}

func (s *userSteps) ensureAbsent(id string) error {
	// Best effort cleanup; a 404 just means there was nothing to remove.
	return s.tc.Do(http.MethodDelete, "/users/"+id+"/", nil)
}

func (s *userSteps) ensurePresent(id string) error {
	if err := s.tc.POST("/users/", defaultPayload(id)); err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusCreated && s.tc.LastStatus() != http.StatusConflict {
		return fmt.Errorf("failed to ensure user %s exists: status %d (body: %s)",
			id, s.tc.LastStatus(), s.tc.LastBody())
	}
	return nil
}

func (s *userSteps) createUser(id string) error {
	return s.tc.POST("/users/", defaultPayload(id))
}

func (s *userSteps) createUserWithPhone(id, phone string) error {
	payload := defaultPayload(id)
	payload["phone"] = phone
	return s.tc.POST("/users/", payload)
}

func (s *userSteps) replaceWithBodyID(pathID, bodyID string) error {
	payload := defaultPayload(bodyID)
	payload["name"] = "Noa Levi-Cohen"
	return s.tc.Do(http.MethodPut, "/users/"+pathID+"/", payload)
}

func (s *userSteps) patchAddress(id, address string) error {
	return s.tc.Do(http.MethodPatch, "/users/"+id+"/", map[string]string{
		"address": address,
	})
}

func (s *userSteps) patchWithID(id string) error {
	return s.tc.Do(http.MethodPatch, "/users/"+id+"/", map[string]string{
		"id":   id,
		"name": "Noa Levi-Cohen",
	})
}

func (s *userSteps) deleteUser(id string) error {
	return s.tc.Do(http.MethodDelete, "/users/"+id+"/", nil)
}
