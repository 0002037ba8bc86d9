package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTimerRunsToCompletion(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "timer", "--seconds", "2", "--fast")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"00:02", "00:01", "00:00", completionMessage}, lines)

	out, err = execute(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "timer:    completed 00:00 / 00:02")
	assert.Contains(t, out, "carousel: 3 / 6 Kingfisher Bird")
}

func TestTimerZeroSecondsCompletesImmediately(t *testing.T) {
	out, err := execute(t, t.TempDir(), "timer", "--seconds", "0", "--fast")
	require.NoError(t, err)
	assert.Equal(t, completionMessage, strings.TrimSpace(out))
}

func TestTimerCancelledPausesAndResumes(t *testing.T) {
	dir := t.TempDir()
	env, err := (&rootOptions{dataDir: dir}).open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = env.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.NoError(t, runHeadless(ctx, env, &out, headlessOptions{seconds: 90, interval: time.Hour}))
	assert.Contains(t, out.String(), "Paused at 01:30")

	out.Reset()
	require.NoError(t, runHeadless(context.Background(), env, &out, headlessOptions{seconds: 5, interval: 1, resume: true}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 92)
	assert.Equal(t, "01:30", lines[0])
	assert.Equal(t, "00:00", lines[90])
	assert.Equal(t, completionMessage, lines[91])
}

func TestTimerPrintsEachSecondOnce(t *testing.T) {
	env, err := (&rootOptions{dataDir: t.TempDir()}).open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = env.Close() })

	want := []string{"00:03", "00:02", "00:01", "00:00", completionMessage}
	for i := 0; i < 50; i++ {
		var out bytes.Buffer
		require.NoError(t, runHeadless(context.Background(), env, &out, headlessOptions{seconds: 3, interval: 1}))
		require.Equal(t, want, strings.Split(strings.TrimSpace(out.String()), "\n"), "run %d", i)
	}
}

func TestStatusAndReset(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "timer:    no snapshot")

	_, err = execute(t, dir, "timer", "--seconds", "1", "--fast")
	require.NoError(t, err)

	out, err = execute(t, dir, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Snapshots cleared.")

	out, err = execute(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "timer:    no snapshot")
}

func TestConfigWrittenOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	_, err := execute(t, dir, "--config", cfgPath, "status")
	require.NoError(t, err)
	_, err = os.Stat(cfgPath)
	require.NoError(t, err)
}

func TestInteractiveNeedsTerminal(t *testing.T) {
	old := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = old })

	_, err := execute(t, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotTerminal))
}
