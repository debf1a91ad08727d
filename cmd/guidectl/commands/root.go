package commands

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sunsetguide/internal/directory"
	"sunsetguide/internal/directory/export"
	"sunsetguide/internal/form"
)

var (
	serverURL string

	dir *directory.Directory
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRoot(os.Stdin).Execute()
}

func newRoot(stdin io.Reader) *cobra.Command {
	in := bufio.NewReader(stdin)
	root := &cobra.Command{
		Use:          "guidectl",
		Short:        "Outer Sunset neighborhood guide client",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			dir = directory.Default()
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "guide server base URL")

	root.AddCommand(
		llmTextCmd(),
		groupsCmd(),
		groupCmd(),
		challengeCmd(in),
		contactCmd(in),
		suggestCmd(),
	)
	return root
}

func listing() *export.Listing {
	return export.NewListing(dir, export.DefaultSite)
}

func submitter() *form.HTTPSubmitter {
	return form.NewHTTPSubmitter(serverURL)
}
