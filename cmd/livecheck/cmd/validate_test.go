package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/livecheck/pkg/config"
)

const rulesDoc = `
rules:
  - field: Name
    check: required
    message: name is required
  - field: Age
    check: digit
    message: age must be a number
combinations:
  - fields: [Password, Confirm]
    check: equal
    message: passwords differ
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithLog(t, args...)
	return out, err
}

func runWithLog(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.Reset()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate(t *testing.T) {
	rules := writeFile(t, "rules.yaml", rulesDoc)

	t.Run("reports sorted messages", func(t *testing.T) {
		record := writeFile(t, "record.yaml", "Name: ''\nAge: ten\nPassword: a\nConfirm: b\n")

		out, err := run(t, "validate", "--rules", rules, "--record", record)
		assert.ErrorIs(t, err, errValidationFailed)
		assert.Equal(t,
			"Age: age must be a number\n"+
				"Confirm: passwords differ\n"+
				"Name: name is required\n"+
				"Password: passwords differ\n",
			out)
	})

	t.Run("valid record", func(t *testing.T) {
		record := writeFile(t, "record.yaml", "Name: Ann\nAge: 42\nPassword: a\nConfirm: a\n")

		out, err := run(t, "validate", "-r", rules, "-f", record, "-v")
		require.NoError(t, err)
		assert.Equal(t, "ok\n", out)
	})

	t.Run("debug log carries command context", func(t *testing.T) {
		record := writeFile(t, "record.yaml", "Name: Ann\nAge: 42\nPassword: a\nConfirm: a\n")

		_, logs, err := runWithLog(t, "validate", "-r", rules, "-f", record, "-v")
		require.NoError(t, err)
		assert.Contains(t, logs, "msg=\"record loaded\"")
		assert.Contains(t, logs, "command=validate")
		assert.Contains(t, logs, "rules="+rules)
		assert.Contains(t, logs, "record="+record)
	})

	t.Run("missing flags", func(t *testing.T) {
		_, err := run(t, "validate")
		assert.Error(t, err)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := run(t, "validate", "--rules", rules, "--record", filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed record", func(t *testing.T) {
		record := writeFile(t, "record.yaml", "- just\n- a list\n")
		_, err := run(t, "validate", "--rules", rules, "--record", record)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errValidationFailed)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Setenv("LIVECHECK_LOG_FORMAT", "xml")
		record := writeFile(t, "record.yaml", "Name: Ann\n")
		_, err := run(t, "validate", "--rules", rules, "--record", record)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
