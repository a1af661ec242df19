package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenSource_TrimsWhitespace(t *testing.T) {
	token, err := StaticTokenSource("  abc\n").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestFileTokenSource_ReadsOnEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("first\n"), 0o600))

	src, err := NewFileTokenSource(path)
	require.NoError(t, err)

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
	token, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestFileTokenSource_MissingFile(t *testing.T) {
	src, err := NewFileTokenSource(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	_, err = src.Token(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileTokenSource_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	src, err := NewFileTokenSource("~/.qform/token")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".qform", "token"), src.path)
}

func TestNewTokenSource_Precedence(t *testing.T) {
	src, err := NewTokenSource("inline", "/does/not/matter")
	require.NoError(t, err)
	assert.Equal(t, StaticTokenSource("inline"), src)

	src, err = NewTokenSource("", "/tmp/token")
	require.NoError(t, err)
	assert.IsType(t, &FileTokenSource{}, src)

	src, err = NewTokenSource("", "")
	require.NoError(t, err)
	assert.Nil(t, src)
}
