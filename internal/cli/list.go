package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtscribe/vtscribe/internal/corpus"
	"github.com/vtscribe/vtscribe/internal/emit"
)

// ListEntry describes one definition file in a listing.
type ListEntry struct {
	Source string   `json:"source"`
	Output string   `json:"output"`
	Tests  []string `json:"tests"`
	Checks int      `json:"checks"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list <corpus-dir>",
		Short:         "List definition files and the tests they declare",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, corpusDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(corpusDir); os.IsNotExist(err) {
		return commandError(formatter, corpus.ErrCodeScan, fmt.Sprintf("corpus directory not found: %s", corpusDir))
	}

	files, errs := corpus.LoadAll(corpusDir, true)
	if len(errs) > 0 {
		return definitionErrors(formatter, errs)
	}

	entries := make([]ListEntry, 0, len(files))
	for _, f := range files {
		entry := ListEntry{
			Source: f.Name,
			Output: emit.OutputName(f.Name),
		}
		for _, t := range f.Tests {
			entry.Tests = append(entry.Tests, t.Name)
			entry.Checks += len(t.Checks)
		}
		entries = append(entries, entry)
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}

	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%s → %s\n", e.Source, e.Output)
		for _, name := range e.Tests {
			fmt.Fprintf(formatter.Writer, "  %s\n", name)
		}
	}
	return nil
}
