package cmd

import (
	"fmt"
	stdlog "log"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/mitchellh/hashstructure"
	"github.com/spf13/cobra"

	"github.com/ostacklab/heatup/pkg/client/apache"
	"github.com/ostacklab/heatup/pkg/client/mysql"
	"github.com/ostacklab/heatup/pkg/client/openstack"
	"github.com/ostacklab/heatup/pkg/client/pip"
	"github.com/ostacklab/heatup/pkg/conf"
	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/plan"
	"github.com/ostacklab/heatup/pkg/plugin"
	"github.com/ostacklab/heatup/pkg/source"
	"github.com/ostacklab/heatup/pkg/step"
	"github.com/ostacklab/heatup/pkg/supervisor"
)

// Runtime bundles what a command needs to run an operation.
type runtime struct {
	spec    *config.Deployment
	planner *plan.Planner
	tools   step.Tools
	// hash of the deployment spec, recorded per completed step.
	hash string
	log  logr.Logger
}

// NewRuntime reads the persistent flags of c and builds the runtime.
func newRuntime(c *cobra.Command) (*runtime, error) {
	path, err := c.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	verbosity, err := c.Flags().GetInt("verbosity")
	if err != nil {
		return nil, err
	}

	stdr.SetVerbosity(verbosity)
	log := stdr.New(stdlog.New(os.Stdout, "", stdlog.Lshortfile|stdlog.Ltime))

	spec, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	h, err := hashstructure.Hash(spec, nil)
	if err != nil {
		return nil, err
	}

	for _, p := range []string{spec.RunDir(), spec.LogDir} {
		if err := os.MkdirAll(p, 0755); err != nil {
			return nil, err
		}
	}

	tools, err := newTools(spec, log)
	if err != nil {
		return nil, err
	}

	return &runtime{
		spec:    spec,
		planner: &plan.Planner{Path: spec.StateFile(), Log: log.WithName("plan")},
		tools:   tools,
		hash:    fmt.Sprintf("%x", h),
		log:     log,
	}, nil
}

// NewTools wires the collaborators the steps delegate to.
func newTools(spec *config.Deployment, log logr.Logger) (step.Tools, error) {
	src := &source.Sources{
		RootPath: spec.RootPath,
		Log:      log.WithName("source"),
	}
	if err := src.Register(step.WorkspaceHeat, spec.Repo); err != nil {
		return step.Tools{}, err
	}
	if err := src.Register(step.WorkspaceClient, spec.ClientRepo); err != nil {
		return step.Tools{}, err
	}

	db, err := newDatabaser(spec, log)
	if err != nil {
		return step.Tools{}, err
	}

	installer := &pip.Pip{Log: log.WithName("pip")}

	return step.Tools{
		Spec:      spec,
		Sources:   src,
		Assembler: &conf.Assembler{Log: log.WithName("conf")},
		Plugins: &plugin.Resolver{
			SourceDir: filepath.Join(spec.RootPath, "workspace", step.WorkspaceHeat),
			PluginDir: spec.PluginDir(),
			Pip:       installer,
			Log:       log.WithName("plugin"),
		},
		Pip: installer,
		DB:  db,
		Identity: &openstack.CLI{
			Env: os.Environ(),
			Log: log.WithName("openstack"),
		},
		Front: &apache.Apache{
			SitesDir: spec.SitesDir,
			Log:      log.WithName("apache"),
		},
		Proc: &supervisor.Exec{
			RunDir: spec.RunDir(),
			LogDir: spec.LogDir,
			Log:    log.WithName("supervisor"),
		},
	}, nil
}

// NewDatabaser takes the admin credentials for the database server from the
// connection URL the service itself uses.
func newDatabaser(spec *config.Deployment, log logr.Logger) (mysql.Databaser, error) {
	u, err := url.Parse(spec.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("databaseUrl: %w", err)
	}
	pw, _ := u.User.Password()

	return &mysql.MySQL{
		Host:     u.Hostname(),
		User:     u.User.Username(),
		Password: pw,
		Log:      log.WithName("mysql"),
	}, nil
}
