package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vtscribe/vtscribe/internal/corpus"
	"github.com/vtscribe/vtscribe/internal/emit"
	"github.com/vtscribe/vtscribe/internal/manifest"
	"github.com/vtscribe/vtscribe/internal/model"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Package  string // generated package name
	Manifest string // manifest database path, empty disables provenance
}

// FileReport describes one generated file.
type FileReport struct {
	Source    string `json:"source"`
	Output    string `json:"output"`
	Tests     int    `json:"tests"`
	DefHash   string `json:"def_hash"`
	OutHash   string `json:"out_hash"`
	Unchanged bool   `json:"unchanged,omitempty"`
}

// GenerateResult is the overall generation summary.
type GenerateResult struct {
	Files     []FileReport `json:"files"`
	TestCount int          `json:"test_count"`
	RunID     string       `json:"run_id,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <corpus-dir> <out-dir>",
		Short: "Generate Go test source from a definition corpus",
		Long: `Generate one Go test file per definition file in the corpus.

Each definition file becomes <base>_test.go in the output directory,
containing one test function per defined test. Generation is deterministic:
unchanged definitions produce byte-identical output.

Exit codes:
  0 - All files generated
  1 - Generation or output I/O failure
  2 - Usage error (missing directories, invalid definitions)

Examples:
  vtscribe generate ./tests ./generated
  vtscribe generate ./tests ./generated --package screentest
  vtscribe generate ./tests ./generated --manifest runs.db`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Package, "package", emit.DefaultPackage, "package name for generated files")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "record provenance in this SQLite database")

	return cmd
}

func runGenerate(opts *GenerateOptions, corpusDir, outDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(corpusDir); os.IsNotExist(err) {
		return commandError(formatter, corpus.ErrCodeScan, fmt.Sprintf("corpus directory not found: %s", corpusDir))
	}

	// Output directory creation is the CLI's concern, not the emitter's.
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		_ = formatter.Error(ErrCodeOutDir, err.Error(), nil)
		return WrapExitError(ExitFailure, "creating output directory", err)
	}

	files, errs := corpus.LoadAll(corpusDir, true)
	if len(errs) > 0 {
		return definitionErrors(formatter, errs)
	}

	var store *manifest.Store
	runID := ""
	if opts.Manifest != "" {
		var err error
		store, err = manifest.Open(opts.Manifest)
		if err != nil {
			_ = formatter.Error(ErrCodeManifest, err.Error(), nil)
			return WrapExitError(ExitFailure, "opening manifest", err)
		}
		defer store.Close()

		runID, err = store.BeginRun(cmd.Context(), corpusDir, outDir)
		if err != nil {
			_ = formatter.Error(ErrCodeManifest, err.Error(), nil)
			return WrapExitError(ExitFailure, "recording run", err)
		}
	}

	result := GenerateResult{RunID: runID}
	em := emit.New(outDir, emit.Options{Package: opts.Package})

	for _, f := range files {
		formatter.VerboseLog("Generating %s (%d tests)", f.Name, len(f.Tests))

		report, err := generateFile(cmd, em, store, runID, outDir, f)
		if err != nil {
			_ = formatter.Error(ErrCodeEmit, err.Error(), nil)
			return WrapExitError(ExitFailure, "generation failed", err)
		}
		result.Files = append(result.Files, *report)
		result.TestCount += report.Tests
	}

	return outputGenerateResult(formatter, result)
}

// generateFile renders one definition file and, when a manifest store is
// open, records its provenance.
func generateFile(cmd *cobra.Command, em *emit.Emitter, store *manifest.Store, runID, outDir string, f *model.TestFile) (*FileReport, error) {
	if err := corpus.Drive(f, em); err != nil {
		return nil, err
	}

	outName := emit.OutputName(f.Name)
	report := &FileReport{
		Source: f.Name,
		Output: outName,
		Tests:  len(f.Tests),
	}

	defHash, err := model.DefinitionHash(f)
	if err != nil {
		return nil, err
	}
	report.DefHash = defHash

	generated, err := os.ReadFile(filepath.Join(outDir, outName))
	if err != nil {
		return nil, err
	}
	report.OutHash = model.OutputHash(generated)

	if store != nil {
		prev, err := store.LastOutputHash(cmd.Context(), f.Name)
		if err != nil {
			return nil, err
		}
		report.Unchanged = prev == report.OutHash

		if err := store.RecordOutput(cmd.Context(), manifest.Record{
			RunID:   runID,
			Source:  f.Name,
			Output:  outName,
			DefHash: defHash,
			OutHash: report.OutHash,
			Size:    int64(len(generated)),
		}); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func outputGenerateResult(formatter *OutputFormatter, result GenerateResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated %d file(s), %d test(s)\n\n", len(result.Files), result.TestCount)
	for _, f := range result.Files {
		suffix := ""
		if f.Unchanged {
			suffix = " (unchanged)"
		}
		fmt.Fprintf(formatter.Writer, "  %s → %s: %d test(s)%s\n", f.Source, f.Output, f.Tests, suffix)
	}
	if result.RunID != "" {
		fmt.Fprintf(formatter.Writer, "\nRecorded run %s\n", result.RunID)
	}
	return nil
}

// commandError reports a usage-level problem (exit code 2).
func commandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// definitionErrors reports corpus load errors (exit code 2).
func definitionErrors(formatter *OutputFormatter, errs []error) error {
	if formatter.Format == "json" {
		cliErrors := make([]CLIError, len(errs))
		for i, err := range errs {
			code, message := parseDefinitionError(err)
			cliErrors[i] = CLIError{Code: code, Message: message}
		}
		response := CLIResponse{
			Status: "error",
			Error:  &cliErrors[0],
			Data:   cliErrors,
		}
		enc := jsonEncoder(formatter)
		if err := enc.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, fmt.Sprintf("corpus invalid: %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Corpus invalid")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		code, message := parseDefinitionError(err)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", code, message)
	}
	return NewExitError(ExitCommandError, fmt.Sprintf("corpus invalid: %d error(s)", len(errs)))
}
