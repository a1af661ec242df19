package configinfra

import (
	"fmt"
	"strconv"
	"time"

	configdomain "qform.io/cli/internal/core/domain/config"
)

// snapshotFromVars converts QF_* string variables into typed entries.
// Unknown variables are ignored.
func snapshotFromVars(vars map[string]string, source, path string, priority int) (configdomain.Snapshot, error) {
	snap := make(configdomain.Snapshot)
	for name, raw := range vars {
		key, ok := envKeys[name]
		if !ok || raw == "" {
			continue
		}
		v, err := convert(key, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		sourcePath := path
		if sourcePath == "" {
			sourcePath = name
		}
		snap[key] = configdomain.Entry{Key: key, Value: v, Source: source, SourcePath: sourcePath, Priority: priority}
	}
	return snap, nil
}

func convert(key, raw string) (interface{}, error) {
	switch key {
	case configdomain.KeyTimeout:
		return time.ParseDuration(raw)
	case configdomain.KeyDebug:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}
