package submission

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	SetFormInstance(id string)
	GetResponseField(field string) (interface{}, error)
}

// RegisterSteps registers form submission and notification steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &submissionSteps{tc: tc}

	ctx.Step(`^I use a new form instance$`, steps.newFormInstance)
	ctx.Step(`^I submit a contact message from "([^"]*)" <([^>]*)> saying "([^"]*)" answering "([^"]*)" with "([^"]*)"$`, steps.submitContact)
	ctx.Step(`^I suggest the group "([^"]*)" as "([^"]*)" <([^>]*)>$`, steps.suggestGroup)
	ctx.Step(`^I suggest the group "([^"]*)" with link "([^"]*)" as "([^"]*)" <([^>]*)>$`, steps.suggestGroupWithLink)
	ctx.Step(`^I send a "([^"]*)" notification from "([^"]*)" <([^>]*)> with message "([^"]*)"$`, steps.sendNotification)

	ctx.Step(`^the field error "([^"]*)" should be "([^"]*)"$`, steps.fieldErrorShouldBe)
}

type submissionSteps struct {
	tc TestContext
}

func (s *submissionSteps) newFormInstance(ctx context.Context) error {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	s.tc.SetFormInstance("e2e-" + hex.EncodeToString(buf))
	return nil
}

func (s *submissionSteps) submitContact(ctx context.Context, name, email, message, question, answer string) error {
	return s.tc.POST("/api/contact", map[string]string{
		"name":             name,
		"email":            email,
		"message":          message,
		"captcha_question": question,
		"captcha":          answer,
	})
}

func (s *submissionSteps) suggestGroup(ctx context.Context, group, name, email string) error {
	return s.tc.POST("/api/group-suggestions", map[string]string{
		"name":       name,
		"email":      email,
		"group_name": group,
	})
}

func (s *submissionSteps) suggestGroupWithLink(ctx context.Context, group, link, name, email string) error {
	return s.tc.POST("/api/group-suggestions", map[string]string{
		"name":       name,
		"email":      email,
		"group_name": group,
		"group_link": link,
	})
}

func (s *submissionSteps) sendNotification(ctx context.Context, kind, name, email, message string) error {
	return s.tc.POST("/send-notification", map[string]string{
		"type":    kind,
		"name":    name,
		"email":   email,
		"message": message,
	})
}

func (s *submissionSteps) fieldErrorShouldBe(ctx context.Context, field, want string) error {
	v, err := s.tc.GetResponseField("fields")
	if err != nil {
		return err
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("fields is not an object: %v", v)
	}
	if got := fmt.Sprint(fields[field]); got != want {
		return fmt.Errorf("expected %s error %q, got %q", field, want, got)
	}
	return nil
}
