package corpus

import "fmt"

// Definition error codes, unified across loaders and the CLI.
const (
	ErrCodeRead      = "D001" // file unreadable
	ErrCodeParse     = "D002" // YAML/CUE syntax or schema error
	ErrCodeEmpty     = "D003" // no tests defined
	ErrCodeName      = "D004" // missing or invalid test name
	ErrCodeDuplicate = "D005" // duplicate test name in file
	ErrCodeScreen    = "D006" // bad screen declaration
	ErrCodeCursor    = "D007" // bad cursor placement
	ErrCodeInput     = "D008" // bad input sequence
	ErrCodeCheck     = "D009" // bad check
	ErrCodeScan      = "D010" // corpus directory scan error
	ErrCodeNoFiles   = "D011" // no definition files found
)

// DefinitionError reports a problem in one definition file.
type DefinitionError struct {
	Path    string
	Code    string
	Message string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
}

func defErr(path, code, format string, args ...any) *DefinitionError {
	return &DefinitionError{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}
}
