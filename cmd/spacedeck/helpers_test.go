package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spacedeck/internal/api/apitest"
	"github.com/alexisbeaulieu97/spacedeck/internal/config"
)

// setupHome isolates the user's home directory and clears backend variables
// inherited from the environment.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvBackendURL, "")
	t.Setenv("VITE_BACKEND_URL", "")
	return home
}

func startBackend(t *testing.T, b *apitest.Backend) string {
	t.Helper()
	return apitest.NewServer(t, b).URL
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// executeAgainst runs args with --backend-url pointing at url.
func executeAgainst(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeCommand(append([]string{"--backend-url", url}, args...)...)
	return stdout, err
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
