package step

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	otia10copy "github.com/otiai10/copy"

	"github.com/ostacklab/heatup/pkg/client/apache"
	"github.com/ostacklab/heatup/pkg/conf"
	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/plugin"
	"github.com/ostacklab/heatup/pkg/source"
)

// ConfigureStep produces the service configuration directory: the main config
// file, the default environment and template directories, the plugin aliases
// and, in front-end mode, the generated site definitions.
// Safe to re-run; generated files of a previous run are replaced.
type ConfigureStep struct {
	Metaa

	/* Parameters */

	// Spec is the deployment being provisioned.
	Spec *config.Deployment

	// Sources maintains the local source copies.
	Sources *source.Sources
	// Assembler writes the main config file.
	Assembler *conf.Assembler
	// Plugins resolves the contrib plugins.
	Plugins *plugin.Resolver
	// Front is the front-end implementation to use.
	Front apache.Fronter
}

// Meta returns a reference to the Metaa data of this Step.
func (st *ConfigureStep) Meta() *Metaa {
	return &st.Metaa
}

// Execute the configure.
func (st *ConfigureStep) Execute(ctx context.Context, log logr.Logger) bool {
	log.Info("start")

	st.update(StateRunning, "")

	if err := os.MkdirAll(st.Spec.ConfDir, 0755); err != nil {
		return st.error2(log, err, "create config dir")
	}

	if err := st.copyDefaults(); err != nil {
		return st.error2(log, err, "copy config defaults")
	}

	if err := st.Assembler.Assemble(st.Spec); err != nil {
		return st.error2(log, err, "assemble config")
	}

	// always resolve; an empty list still wipes aliases of a previous run.
	if err := st.Plugins.Resolve(ctx, st.Spec.Plugins); err != nil {
		return st.error2(log, err, "resolve plugins")
	}

	if st.Spec.UseModWSGI {
		if err := st.installSites(); err != nil {
			return st.error2(log, err, "install front-end sites")
		}
	}

	st.update(StateReady, "configuration written")

	return true
}

// CopyDefaults populates environment.d, templates and api-paste.ini from the
// source checkout. These are copied, not generated.
func (st *ConfigureStep) copyDefaults() error {
	w, ok := st.Sources.Workspace(WorkspaceHeat)
	if !ok {
		return fmt.Errorf("workspace %s not registered", WorkspaceHeat)
	}

	pairs := []struct{ src, dst string }{
		{filepath.Join(w.Path, "etc", "heat", "environment.d"), st.Spec.EnvironmentDir()},
		{filepath.Join(w.Path, "etc", "heat", "templates"), st.Spec.TemplatesDir()},
		{filepath.Join(w.Path, "etc", "heat", "api-paste.ini"), filepath.Join(st.Spec.ConfDir, "api-paste.ini")},
	}
	for _, p := range pairs {
		if err := otia10copy.Copy(p.src, p.dst); err != nil {
			return fmt.Errorf("%s: %w", p.src, err)
		}
	}

	return nil
}

func (st *ConfigureStep) installSites() error {
	for _, s := range []struct {
		name   string
		binary string
		port   int
	}{
		{SiteAPI, "heat-wsgi-api", st.Spec.APIPort},
		{SiteCfn, "heat-wsgi-api-cfn", st.Spec.CfnPort},
		{SiteCloudwatch, "heat-wsgi-api-cloudwatch", st.Spec.CloudwatchPort},
	} {
		err := st.Front.InstallSite(s.name, apache.SiteValues{
			Port:        s.port,
			Binary:      s.binary,
			BinDir:      st.Spec.BinDir,
			User:        st.Spec.User,
			Group:       st.Spec.User,
			Processes:   st.Spec.APIWorkers,
			LogDir:      st.Spec.LogDir,
			SSLEngine:   st.Spec.UseSSL,
			SSLCertFile: st.Spec.TLSCertFile,
			SSLKeyFile:  st.Spec.TLSKeyFile,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
