package cli

import (
	"encoding/json"
	"errors"

	"github.com/vtscribe/vtscribe/internal/corpus"
)

// Generation error codes surfaced by the CLI. Definition errors carry their
// own D-codes from the corpus package.
const (
	ErrCodeGeneric  = "E100"
	ErrCodeOutDir   = "E101" // output directory cannot be created
	ErrCodeManifest = "E102" // manifest database failure
	ErrCodeEmit     = "E103" // emitter/resource failure
)

// parseDefinitionError extracts a code and message from a corpus error.
func parseDefinitionError(err error) (string, string) {
	var defErr *corpus.DefinitionError
	if errors.As(err, &defErr) {
		return defErr.Code, defErr.Path + ": " + defErr.Message
	}
	return ErrCodeGeneric, err.Error()
}

// jsonEncoder returns an indented encoder on the formatter's writer.
func jsonEncoder(f *OutputFormatter) *json.Encoder {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc
}
