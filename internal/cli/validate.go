package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtscribe/vtscribe/internal/corpus"
)

// ValidateResult summarizes a corpus validation pass.
type ValidateResult struct {
	Files  int        `json:"files"`
	Tests  int        `json:"tests"`
	Errors []CLIError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <corpus-dir>",
		Short: "Validate a definition corpus without generating",
		Long: `Parse and validate every definition file in the corpus.

All errors are collected and reported; nothing is written.

Exit codes:
  0 - Corpus valid
  2 - Corpus invalid or directory missing`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, corpusDir string, cmd *cobra.Command) error {
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

	result := ValidateResult{Files: len(files)}
	for _, f := range files {
		formatter.VerboseLog("Validated %s: %d test(s)", f.Name, len(f.Tests))
		result.Tests += len(f.Tests)
	}

	if len(errs) > 0 {
		return definitionErrors(formatter, errs)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Corpus valid: %d file(s), %d test(s)\n", result.Files, result.Tests)
	return nil
}
