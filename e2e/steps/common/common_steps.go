package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	POST(path string, body interface{}) error
	OPTIONS(path string) error
	SetHeader(name, value string)
	GetStatusCode() int
	GetHeader(name string) string
	GetBody() string
	GetResponseField(field string) (interface{}, error)
	ResponseContains(field string) bool
}

// RegisterSteps registers generic request and assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	// Requests
	ctx.Step(`^I GET "([^"]*)"$`, steps.get)
	ctx.Step(`^I POST the raw body '([^']*)' to "([^"]*)"$`, steps.postRaw)
	ctx.Step(`^I send a preflight request to "([^"]*)"$`, steps.preflight)
	ctx.Step(`^I send the header "([^"]*)" with value "([^"]*)"$`, steps.setHeader)

	// Assertions
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, steps.headerShouldBe)
	ctx.Step(`^the response header "([^"]*)" should be present$`, steps.headerShouldBePresent)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.fieldShouldBe)
	ctx.Step(`^the response should have field "([^"]*)"$`, steps.shouldHaveField)
	ctx.Step(`^the response body should contain "([^"]*)"$`, steps.bodyShouldContain)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) get(ctx context.Context, path string) error {
	return s.tc.GET(path, nil)
}

func (s *commonSteps) postRaw(ctx context.Context, body, path string) error {
	return s.tc.POST(path, body)
}

func (s *commonSteps) preflight(ctx context.Context, path string) error {
	return s.tc.OPTIONS(path)
}

func (s *commonSteps) setHeader(ctx context.Context, name, value string) error {
	s.tc.SetHeader(name, value)
	return nil
}

func (s *commonSteps) statusShouldBe(ctx context.Context, want int) error {
	if got := s.tc.GetStatusCode(); got != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, got, s.tc.GetBody())
	}
	return nil
}

func (s *commonSteps) headerShouldBe(ctx context.Context, name, want string) error {
	if got := s.tc.GetHeader(name); got != want {
		return fmt.Errorf("expected header %s=%q, got %q", name, want, got)
	}
	return nil
}

func (s *commonSteps) headerShouldBePresent(ctx context.Context, name string) error {
	if s.tc.GetHeader(name) == "" {
		return fmt.Errorf("expected header %s to be set", name)
	}
	return nil
}

func (s *commonSteps) fieldShouldBe(ctx context.Context, field, want string) error {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("expected %s=%q, got %q", field, want, got)
	}
	return nil
}

func (s *commonSteps) shouldHaveField(ctx context.Context, field string) error {
	if !s.tc.ResponseContains(field) {
		return fmt.Errorf("expected field %q in %s", field, s.tc.GetBody())
	}
	return nil
}

func (s *commonSteps) bodyShouldContain(ctx context.Context, text string) error {
	if !strings.Contains(s.tc.GetBody(), text) {
		return fmt.Errorf("expected body to contain %q", text)
	}
	return nil
}
