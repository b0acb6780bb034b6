package main

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	return cmd, &out
}

func TestReplay(t *testing.T) {
	cmd, out := newTestCmd()

	require.NoError(t, replay(cmd, []string{"../../internal/trace/testdata/pull_refresh.yaml"}))

	text := out.String()
	assert.Contains(t, text, "(pull-refresh)")
	assert.Contains(t, text, "#1 begin_refresh")
	assert.Contains(t, text, "#2 refresh")
	assert.Contains(t, text, "final phase: Idle, 5 steps")
}

func TestReplay_MissingFile(t *testing.T) {
	cmd, out := newTestCmd()

	err := replay(cmd, []string{"testdata/missing.yaml", "../../internal/trace/testdata/edge_down.yaml"})
	require.ErrorIs(t, err, errApp)
	assert.Contains(t, out.String(), "edge_down.yaml")
}

func TestVersion(t *testing.T) {
	cmd, out := newTestCmd()

	version(cmd, nil)
	assert.Contains(t, out.String(), "Version: "+BuildVersion)
}

func TestLoggerInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", defaultLogName)

	closer, err := loggerInit(path, slog.LevelDebug)
	require.NoError(t, err)
	t.Cleanup(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		_ = closer.Close()
	})

	slog.Info("hello")
	assert.FileExists(t, path)
}
