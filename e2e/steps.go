package e2e

import (
	"github.com/cucumber/godog"

	"user-registry/e2e/steps/common"
	"user-registry/e2e/steps/users"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (generic requests, status and body assertions)
	common.RegisterSteps(ctx, tc)

	// Register user-resource steps
	users.RegisterSteps(ctx, tc)
}
