package supervisor

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmlt/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExec(t *testing.T) (*Exec, func()) {
	dir, err := ioutil.TempDir("", "supervisor_test_")
	require.NoError(t, err)

	e := &Exec{
		RunDir: filepath.Join(dir, "run"),
		LogDir: filepath.Join(dir, "log"),
		Log:    testr.New(t),
	}

	return e, func() { os.RemoveAll(dir) }
}

func TestStartStop(t *testing.T) {
	e, done := testExec(t)
	defer done()

	err := e.Start("h-eng", "sleep", "60")
	require.NoError(t, err)

	names, err := e.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"h-eng"}, names)

	// double start of the same name errors.
	assert.Error(t, e.Start("h-eng", "sleep", "60"))

	require.NoError(t, e.Stop("h-eng"))

	names, err = e.Names()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStopNotRunning(t *testing.T) {
	e, done := testExec(t)
	defer done()

	assert.NoError(t, e.Stop("h-api"))
}

func TestStartWritesLog(t *testing.T) {
	e, done := testExec(t)
	defer done()

	require.NoError(t, e.Start("echoer", "echo", "hello"))

	assert.FileExists(t, filepath.Join(e.LogDir, "echoer.log"))
}
