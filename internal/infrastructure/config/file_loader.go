package configinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	configdomain "qform.io/cli/internal/core/domain/config"
	configports "qform.io/cli/internal/core/ports/config"
)

// fileConfig is the on-disk JSON layout.
type fileConfig struct {
	QuestionnaireURL string `json:"questionnaire_url,omitempty"`
	Token            string `json:"token,omitempty"`
	TokenFile        string `json:"token_file,omitempty"`
	UserAgent        string `json:"user_agent,omitempty"`
	Timeout          string `json:"timeout,omitempty"`
	LogLevel         string `json:"log_level,omitempty"`
	Debug            *bool  `json:"debug,omitempty"`
}

// FileLoader reads the JSON config file. A missing file is not an error.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader { return &FileLoader{path: path} }

// DefaultConfigPath returns ~/.qform/config.json.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".qform", "config.json")
}

func (l *FileLoader) Name() string { return "file" }

func (l *FileLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	snap := make(configdomain.Snapshot)

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", l.path, err)
	}

	add := func(key string, v interface{}) {
		snap[key] = configdomain.Entry{Key: key, Value: v, Source: "file", SourcePath: l.path, Priority: configdomain.PriorityFile}
	}
	if fc.QuestionnaireURL != "" {
		add(configdomain.KeyQuestionnaireURL, fc.QuestionnaireURL)
	}
	if fc.Token != "" {
		add(configdomain.KeyToken, fc.Token)
	}
	if fc.TokenFile != "" {
		add(configdomain.KeyTokenFile, fc.TokenFile)
	}
	if fc.UserAgent != "" {
		add(configdomain.KeyUserAgent, fc.UserAgent)
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout in %s: %w", l.path, err)
		}
		add(configdomain.KeyTimeout, d)
	}
	if fc.LogLevel != "" {
		add(configdomain.KeyLogLevel, fc.LogLevel)
	}
	if fc.Debug != nil {
		add(configdomain.KeyDebug, *fc.Debug)
	}
	return snap, nil
}

var _ configports.Loader = (*FileLoader)(nil)
