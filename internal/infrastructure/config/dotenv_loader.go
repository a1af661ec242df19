package configinfra

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	configdomain "qform.io/cli/internal/core/domain/config"
	configports "qform.io/cli/internal/core/ports/config"
)

// DotenvLoader reads QF_* values from .env files without touching the
// process environment. Earlier paths win.
type DotenvLoader struct {
	paths []string
}

func NewDotenvLoader(paths ...string) *DotenvLoader {
	return &DotenvLoader{paths: paths}
}

func (l *DotenvLoader) Name() string { return "dotenv" }

func (l *DotenvLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	snap := make(configdomain.Snapshot)
	for i := len(l.paths) - 1; i >= 0; i-- {
		path := l.paths[i]
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		s, err := snapshotFromVars(vars, "dotenv", path, configdomain.PriorityDotenv)
		if err != nil {
			return nil, err
		}
		for k, e := range s {
			snap[k] = e
		}
	}
	return snap, nil
}

var _ configports.Loader = (*DotenvLoader)(nil)
