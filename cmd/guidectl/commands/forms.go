package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"sunsetguide/internal/captcha"
	"sunsetguide/internal/form"
	"sunsetguide/internal/submission/models"
	"sunsetguide/internal/validation"
)

// maxChallengeAttempts bounds how many wrong answers contact accepts before
// giving up.
const maxChallengeAttempts = 3

// challenge: practice the math check locally.
func challengeCmd(in *bufio.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "challenge",
		Short: "Ask one math challenge and check the answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := captcha.Generate()
			answer, err := prompt(cmd.OutOrStdout(), in, ch.Question+" = ")
			if err != nil {
				return err
			}
			if !captcha.Validate(ch, answer) {
				return errors.New(captcha.MsgWrong)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "correct")
			return nil
		},
	}
}

// contact --name --email --message: send the contact form.
func contactCmd(in *bufio.Reader) *cobra.Command {
	var values form.ContactValues
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the guide maintainers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			f := form.NewContactForm(submitter())
			for attempt := 1; ; attempt++ {
				answer, err := prompt(out, in, f.Question()+" = ")
				if err != nil {
					return err
				}
				values.Captcha = answer
				outcome, err := f.Submit(cmd.Context(), values)
				if err != nil {
					return report(out, outcome, err)
				}
				_, wrong := outcome.FieldErrors[validation.FieldCaptcha]
				if outcome.State == models.StateRejected && wrong && len(outcome.FieldErrors) == 1 && attempt < maxChallengeAttempts {
					fmt.Fprintln(out, outcome.FieldErrors[validation.FieldCaptcha])
					continue
				}
				return report(out, outcome, nil)
			}
		},
	}
	cmd.Flags().StringVar(&values.Name, "name", "", "your name")
	cmd.Flags().StringVar(&values.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&values.Message, "message", "", "message body")
	return cmd
}

// suggest --name --email --group-name [--group-link] [--note]: suggest a group.
func suggestCmd() *cobra.Command {
	var values validation.GroupSuggestion
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a group for the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := form.NewSuggestionForm(submitter()).Submit(cmd.Context(), values)
			return report(cmd.OutOrStdout(), outcome, err)
		},
	}
	cmd.Flags().StringVar(&values.Name, "name", "", "your name")
	cmd.Flags().StringVar(&values.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&values.GroupName, "group-name", "", "name of the group")
	cmd.Flags().StringVar(&values.GroupLink, "group-link", "", "group website")
	cmd.Flags().StringVar(&values.Note, "note", "", "anything we should know")
	return cmd
}

func prompt(w io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// report prints the outcome and turns rejections into a non-zero exit.
func report(w io.Writer, o form.Outcome, err error) error {
	if o.Notice != nil {
		fmt.Fprintf(w, "%s %s\n", o.Notice.Title, o.Notice.Description)
	}
	if err != nil {
		return err
	}
	if len(o.FieldErrors) > 0 {
		fields := make([]string, 0, len(o.FieldErrors))
		for field := range o.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(w, "  %s: %s\n", field, o.FieldErrors[field])
		}
		return errors.New("submission rejected")
	}
	if !o.State.Succeeded() {
		return fmt.Errorf("submission ended in state %s", o.State)
	}
	if o.ID != "" {
		fmt.Fprintf(w, "id: %s\n", o.ID)
	}
	return nil
}
