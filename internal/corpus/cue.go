package corpus

import (
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/vtscribe/vtscribe/internal/model"
)

// LoadCUE reads and validates a CUE definition file. CUE definitions use the
// same shape as YAML ones; CUE is useful when a corpus wants constraints or
// shared defaults across tests, which plain YAML cannot express.
func LoadCUE(path string) (*model.TestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DefinitionError{Path: path, Code: ErrCodeRead, Message: err.Error()}
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, &DefinitionError{Path: path, Code: ErrCodeParse, Message: err.Error()}
	}

	testsVal := v.LookupPath(cue.ParsePath("tests"))
	if !testsVal.Exists() {
		return nil, &DefinitionError{Path: path, Code: ErrCodeEmpty, Message: "no tests defined"}
	}

	var doc fileDoc
	if err := v.Decode(&doc); err != nil {
		return nil, &DefinitionError{Path: path, Code: ErrCodeParse, Message: err.Error()}
	}

	return buildFile(path, &doc)
}
