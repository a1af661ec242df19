package auth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	httpports "qform.io/cli/internal/core/ports/http"
)

// StaticTokenSource always returns the same token.
type StaticTokenSource string

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// FileTokenSource reads the token from a file on every call, so a token
// rotated by another tool is picked up without restarting.
type FileTokenSource struct {
	path string
}

// NewFileTokenSource expands a leading "~/" to the user's home directory.
func NewFileTokenSource(path string) (*FileTokenSource, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return &FileTokenSource{path: path}, nil
}

func (s *FileTokenSource) Token(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// NewTokenSource prefers an explicit token over a token file. With neither
// configured it returns nil and requests go out unauthenticated.
func NewTokenSource(token, tokenFile string) (httpports.TokenSource, error) {
	if token != "" {
		return StaticTokenSource(token), nil
	}
	if tokenFile != "" {
		src, err := NewFileTokenSource(tokenFile)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return nil, nil
}

var (
	_ httpports.TokenSource = StaticTokenSource("")
	_ httpports.TokenSource = (*FileTokenSource)(nil)
)
