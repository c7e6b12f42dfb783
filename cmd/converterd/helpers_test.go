package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testAdmin = "manifest1hj5fveer5cjtn4wd6wstzugjfdxzl0xp8ws9ct"
	testPoa   = "manifest1afk9zr2hn2jsac63h4hm60vl9z3e5u69gndzf7c99cqge3vzwjzsfmy9qj"
)

const testConfigTOML = `
admin = "` + testAdmin + `"
poa_admin = "` + testPoa + `"
rate = "0.5"
source_denom = "umfx"
target_denom = "factory/` + testPoa + `/upwr"
paused = false

[converter]
bech32-prefix = "manifest"
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs a fresh root command and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}
