package configinfra

import (
	"context"
	"os"

	configdomain "qform.io/cli/internal/core/domain/config"
	configports "qform.io/cli/internal/core/ports/config"
)

// envKeys maps QF_* variables to configuration keys. The same names are
// recognised inside .env files.
var envKeys = map[string]string{
	"QF_QUESTIONNAIRE_URL": configdomain.KeyQuestionnaireURL,
	"QF_TOKEN":             configdomain.KeyToken,
	"QF_TOKEN_FILE":        configdomain.KeyTokenFile,
	"QF_USER_AGENT":        configdomain.KeyUserAgent,
	"QF_TIMEOUT":           configdomain.KeyTimeout,
	"QF_LOG_LEVEL":         configdomain.KeyLogLevel,
	"QF_DEBUG":             configdomain.KeyDebug,
}

type EnvLoader struct {
	lookup func(string) (string, bool)
}

func NewEnvLoader() *EnvLoader { return &EnvLoader{lookup: os.LookupEnv} }

func (l *EnvLoader) Name() string { return "env" }

// Load builds a snapshot from QF_* environment variables.
func (l *EnvLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	vars := map[string]string{}
	for name := range envKeys {
		if v, ok := l.lookup(name); ok && v != "" {
			vars[name] = v
		}
	}
	return snapshotFromVars(vars, "env", "", configdomain.PriorityEnv)
}

var _ configports.Loader = (*EnvLoader)(nil)
