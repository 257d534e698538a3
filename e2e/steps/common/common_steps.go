package common

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	LastStatus() int
	LastBody() []byte
	GetResponseField(field string) (any, error)
}

// RegisterSteps registers generic request and assertion step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I GET "([^"]*)"$`, steps.get)
	ctx.Step(`^the response status should be (\d+)$`, steps.assertStatus)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.assertField)
	ctx.Step(`^the response body should contain "([^"]*)"$`, steps.assertBodyContains)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) get(path string) error {
	return s.tc.GET(path)
}

func (s *commonSteps) assertStatus(expected int) error {
	if s.tc.LastStatus() != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			expected, s.tc.LastStatus(), s.tc.LastBody())
	}
	return nil
}

func (s *commonSteps) assertField(field, expected string) error {
	value, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, actual)
	}
	return nil
}

func (s *commonSteps) assertBodyContains(substring string) error {
	if !strings.Contains(string(s.tc.LastBody()), substring) {
		return fmt.Errorf("expected body to contain %q, got %s", substring, s.tc.LastBody())
	}
	return nil
}
