package installer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

// writeScript creates an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-composer")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestNewComposer_DefaultCommand(t *testing.T) {
	c := NewComposer(Config{Command: "   "})
	assert.Equal(t, DefaultCommand, c.Command())

	c = NewComposer(Config{Command: "composer  install --no-interaction"})
	assert.Equal(t, "composer install --no-interaction", c.Command())
}

func TestInstall_RunsInProjectDir(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	script := writeScript(t, `pwd; echo "args: $*"`)

	var out bytes.Buffer
	c := NewComposer(Config{Command: script + " install", Output: &out})
	require.NoError(t, c.Install(context.Background(), dir))

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), resolved)
	assert.Contains(t, out.String(), "args: install")
}

func TestInstall_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)
	script := writeScript(t, `echo "Your requirements could not be resolved" >&2; exit 2`)

	c := NewComposer(Config{Command: script})
	err := c.Install(context.Background(), t.TempDir())
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Tail, "could not be resolved")
	assert.Contains(t, err.Error(), "exit status 2")
}

func TestInstall_NotFound(t *testing.T) {
	c := NewComposer(Config{Command: "nebula-no-such-composer-binary install"})
	err := c.Install(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInstall_Timeout(t *testing.T) {
	skipWithoutShell(t)
	script := writeScript(t, `exec sleep 5`)

	c := NewComposer(Config{Command: script, Timeout: 50 * time.Millisecond})
	start := time.Now()
	err := c.Install(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestInstall_Cancelled(t *testing.T) {
	skipWithoutShell(t)
	script := writeScript(t, `exec sleep 5`)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	err := NewComposer(Config{Command: script}).Install(ctx, t.TempDir())
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestTailBuffer(t *testing.T) {
	tb := newTailBuffer(3)
	_, _ = tb.Write([]byte("one\ntwo\nthr"))
	_, _ = tb.Write([]byte("ee\nfour\nfive"))

	assert.Equal(t, "three\nfour\nfive", tb.String())

	_, _ = tb.Write([]byte("\n"))
	assert.Equal(t, strings.Join([]string{"three", "four", "five"}, "\n"), tb.String())
}
