package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/etc/heat", d.ConfDir)
	assert.Equal(t, "/etc/heat/heat.conf", d.ConfFile())
	assert.Equal(t, "/etc/heat/environment.d", d.EnvironmentDir())
	assert.Equal(t, 8004, d.APIPort)
	assert.Equal(t, "http://127.0.0.1:8000", d.ServiceURL(8000))
	assert.False(t, d.Standalone)
}

func TestLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "config_test_")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	p := filepath.Join(dir, "heatup.yaml")
	err = ioutil.WriteFile(p, []byte(`
confDir: /tmp/etc/heat
apiPort: 18004
standalone: true
deferredAuth: password
plugins:
  - rackspace
  - docker
`), 0644)
	require.NoError(t, err)

	d, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/etc/heat", d.ConfDir)
	assert.Equal(t, 18004, d.APIPort)
	// defaults still fill the unset fields.
	assert.Equal(t, 8000, d.CfnPort)
	assert.Equal(t, "RegionOne", d.Region)
	assert.True(t, d.Standalone)
	assert.Equal(t, DeferredAuthPassword, d.DeferredAuth)
	assert.Equal(t, []string{"rackspace", "docker"}, d.Plugins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		it      string
		mutate  func(*Deployment)
		wantErr bool
	}{
		{
			it:     "should accept empty deferred auth",
			mutate: func(d *Deployment) { d.DeferredAuth = "" },
		}, {
			it:     "should accept trusts",
			mutate: func(d *Deployment) { d.DeferredAuth = DeferredAuthTrusts },
		}, {
			it:      "should reject unknown deferred auth",
			mutate:  func(d *Deployment) { d.DeferredAuth = "delegation" },
			wantErr: true,
		}, {
			it:      "should reject unknown repo type",
			mutate:  func(d *Deployment) { d.Repo.Type = "svn" },
			wantErr: true,
		}, {
			it:      "should reject unknown client repo type",
			mutate:  func(d *Deployment) { d.ClientRepo.Type = "svn" },
			wantErr: true,
		},
	}
	for _, tst := range tests {
		t.Run(tst.it, func(t *testing.T) {
			d := Defaults()
			tst.mutate(&d)
			err := d.Validate()
			if tst.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
