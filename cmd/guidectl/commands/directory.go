package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"sunsetguide/internal/directory/export"
)

// llm-txt: print the plain-text export.
func llmTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "llm-txt",
		Short: "Print the llm.txt export of the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), export.RenderLLMText(dir, time.Now()))
			return err
		},
	}
}

// groups [--q text] [--category slug]: print matching group records.
func groupsCmd() *cobra.Command {
	var q export.Query
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List groups as JSON records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), listing().Search(q, time.Now()))
		},
	}
	cmd.Flags().StringVar(&q.Text, "q", "", "case-insensitive text search over name and description")
	cmd.Flags().StringVar(&q.Category, "category", "", "category slug filter")
	return cmd
}

// group <id>: print one record.
func groupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group <id>",
		Short: "Show a single group record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, ok := listing().Find(args[0], time.Now())
			if !ok {
				return fmt.Errorf("group %q not found", args[0])
			}
			return printJSON(cmd.OutOrStdout(), record)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
