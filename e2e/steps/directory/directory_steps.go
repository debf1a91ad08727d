package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GetDecoded() any
	GetBody() string
}

// RegisterSteps registers neighborhood API assertions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &directorySteps{tc: tc}

	ctx.Step(`^the response should list at least (\d+) groups$`, steps.listAtLeast)
	ctx.Step(`^the response should list no groups$`, steps.listNone)
	ctx.Step(`^every listed group should have category "([^"]*)"$`, steps.everyHasCategory)
	ctx.Step(`^every listed group should mention "([^"]*)"$`, steps.everyMentions)
}

type directorySteps struct {
	tc TestContext
}

func (s *directorySteps) records() ([]map[string]any, error) {
	list, ok := s.tc.GetDecoded().([]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON array: %s", s.tc.GetBody())
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected record %v", item)
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *directorySteps) listAtLeast(ctx context.Context, n int) error {
	records, err := s.records()
	if err != nil {
		return err
	}
	if len(records) < n {
		return fmt.Errorf("expected at least %d groups, got %d", n, len(records))
	}
	return nil
}

func (s *directorySteps) listNone(ctx context.Context) error {
	records, err := s.records()
	if err != nil {
		return err
	}
	if len(records) != 0 {
		return fmt.Errorf("expected no groups, got %d", len(records))
	}
	return nil
}

func (s *directorySteps) everyHasCategory(ctx context.Context, category string) error {
	records, err := s.records()
	if err != nil {
		return err
	}
	for _, r := range records {
		tags, _ := r["category"].([]any)
		found := false
		for _, tag := range tags {
			if tag == category {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("group %v is missing category %q", r["id"], category)
		}
	}
	return nil
}

func (s *directorySteps) everyMentions(ctx context.Context, text string) error {
	records, err := s.records()
	if err != nil {
		return err
	}
	needle := strings.ToLower(text)
	for _, r := range records {
		name, _ := r["name"].(string)
		desc, _ := r["description"].(string)
		if !strings.Contains(strings.ToLower(name+" "+desc), needle) {
			return fmt.Errorf("group %v does not mention %q", r["id"], text)
		}
	}
	return nil
}
