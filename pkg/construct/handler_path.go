package construct

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultHandlerCodePath is the directory cmd/kb-custom-resource is built into.
const DefaultHandlerCodePath = "build/kb-custom-resource"

// handlerCodePath returns p (or the default) relative to the working directory, which is where the CDK
// resolves asset paths from.
func handlerCodePath(p string) (string, error) {
	if p == "" {
		p = DefaultHandlerCodePath
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "could not resolve handler code path %s", p)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "could not get working directory")
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return "", errors.Wrapf(err, "could not make %s relative to %s", abs, cwd)
	}
	return rel, nil
}
