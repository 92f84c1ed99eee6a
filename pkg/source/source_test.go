package source

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmlt/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostacklab/heatup/pkg/config"
)

func testSources(t *testing.T) (*Sources, func()) {
	dir, err := ioutil.TempDir("", "source_test_")
	require.NoError(t, err)

	ss := &Sources{
		RootPath: dir,
		Log:      testr.New(t),
	}

	return ss, func() { os.RemoveAll(dir) }
}

func writeTree(t *testing.T, dir string, files map[string]string) {
	for p, content := range files {
		fp := filepath.Join(dir, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
		require.NoError(t, ioutil.WriteFile(fp, []byte(content), 0644))
	}
}

// Local type source content flows repo -> workspace; unchanged content is not
// copied again.
func TestLocalFetchGet(t *testing.T) {
	ss, done := testSources(t)
	defer done()

	src, err := ioutil.TempDir("", "source_test_src_")
	require.NoError(t, err)
	defer os.RemoveAll(src)
	writeTree(t, src, map[string]string{
		"setup.py":            "#",
		"etc/heat/api-paste.ini": "[pipeline:main]",
	})

	spec := config.SourceSpec{Type: "local", URL: src}
	require.NoError(t, ss.Register("heat", spec))

	require.NoError(t, ss.FetchAll(context.Background()))

	changed, err := ss.Get("heat")
	require.NoError(t, err)
	assert.True(t, changed)

	w, ok := ss.Workspace("heat")
	require.True(t, ok)
	assert.True(t, w.Synced)
	assert.FileExists(t, filepath.Join(w.Path, "etc", "heat", "api-paste.ini"))

	// same content, no change expected.
	require.NoError(t, ss.FetchAll(context.Background()))
	changed, err = ss.Get("heat")
	require.NoError(t, err)
	assert.False(t, changed)

	// new content is picked up.
	writeTree(t, src, map[string]string{"setup.py": "# v2"})
	require.NoError(t, ss.FetchAll(context.Background()))
	changed, err = ss.Get("heat")
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestGetBeforeFetch(t *testing.T) {
	ss, done := testSources(t)
	defer done()

	require.NoError(t, ss.Register("heat", config.SourceSpec{Type: "local", URL: "testdata"}))

	_, err := ss.Get("heat")
	assert.Error(t, err)

	_, err = ss.Get("nonexisting")
	assert.Error(t, err)
}

func TestRepoPath(t *testing.T) {
	ss, done := testSources(t)
	defer done()

	p := ss.repoPath(config.SourceSpec{Type: "git", URL: "https://opendev.org/openstack/heat.git", Ref: "stable/xyz"})
	assert.Equal(t, "heat", filepath.Base(p))
	assert.NotContains(t, filepath.Dir(p), "/stable/xyz")
}
