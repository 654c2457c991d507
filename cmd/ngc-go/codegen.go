package main

import (
	"strings"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	compiler "github.com/ngcompiler/ngc-go/packages/compiler/src"
)

var osFs = afero.NewOsFs()

// linkFile reads path, rewrites its partial declarations through compiler.LinkFile, and
// writes the result back in place.
func linkFile(path string) error {
	content, err := afero.ReadFile(osFs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	out := compiler.LinkFile(path, string(content))
	if strings.HasPrefix(out, "/* Linker Error") {
		return errors.Errorf("linking %s: %s", path, out)
	}

	if err := afero.WriteFile(osFs, path, []byte(out), 0o644); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}
