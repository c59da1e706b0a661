package testutil

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorIs fails the test unless errors.Is(err, target).
// The failure message shows the full error chain.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	if !errors.Is(err, target) {
		assert.Failf(t, "error chain does not contain target",
			"got %q (%T), want %q", err.Error(), err, target.Error())
	}
}

// AssertFileContent fails the test unless the file at path holds exactly want.
func AssertFileContent(t *testing.T, path string, want []byte) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	assert.Equal(t, string(want), string(got), "content of %s", path)
}

// AssertFileMissing fails the test if path exists.
func AssertFileMissing(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist, "expected %s to be absent", path)
}
