package corpus

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/vtscribe/vtscribe/internal/model"
)

// Walk returns the definition files under dir in sorted order, so corpus
// processing and generated output ordering are deterministic.
func Walk(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml", ".cue":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, &DefinitionError{Path: dir, Code: ErrCodeScan, Message: err.Error()}
	}
	sort.Strings(files)
	return files, nil
}

// Load parses one definition file, dispatching on its extension.
func Load(path string) (*model.TestFile, error) {
	if filepath.Ext(path) == ".cue" {
		return LoadCUE(path)
	}
	return LoadYAML(path)
}

// LoadAll walks dir and parses every definition file. With collectAll set,
// parsing continues past per-file errors and all errors are returned;
// otherwise the first error stops the load. Files that parsed successfully
// are always returned.
func LoadAll(dir string, collectAll bool) ([]*model.TestFile, []error) {
	paths, err := Walk(dir)
	if err != nil {
		return nil, []error{err}
	}
	if len(paths) == 0 {
		return nil, []error{&DefinitionError{Path: dir, Code: ErrCodeNoFiles, Message: "no definition files found"}}
	}

	var (
		files []*model.TestFile
		errs  []error
	)
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			errs = append(errs, err)
			if !collectAll {
				return files, errs
			}
			continue
		}
		files = append(files, f)
	}
	return files, errs
}
