package e2e

import (
	"github.com/cucumber/godog"

	"sunsetguide/e2e/steps/common"
	"sunsetguide/e2e/steps/directory"
	"sunsetguide/e2e/steps/submission"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and assertions
	common.RegisterSteps(ctx, tc)

	// Neighborhood API and llm.txt
	directory.RegisterSteps(ctx, tc)

	// Contact, group suggestion, and notification endpoints
	submission.RegisterSteps(ctx, tc)
}
