package step

import (
	"context"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/client/apache"
	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/supervisor"
)

// StartStep brings up the engine and the three API surfaces.
// The engine is always a plain supervised process. The API surfaces run
// either as supervised processes or behind the web front-end, depending on
// what Configure installed.
type StartStep struct {
	Metaa

	/* Parameters */

	// Spec is the deployment being provisioned.
	Spec *config.Deployment

	// Proc supervises long-running processes.
	Proc supervisor.Supervisor

	// Front manages the web front-end.
	Front apache.Fronter
}

// Meta returns a reference to the Metaa data of this Step.
func (st *StartStep) Meta() *Metaa {
	return &st.Metaa
}

// Execute the start.
func (st *StartStep) Execute(ctx context.Context, log logr.Logger) bool {
	log.Info("start")

	st.update(StateRunning, "")

	err := st.Proc.Start(ProcEngine,
		filepath.Join(st.Spec.BinDir, "heat-engine"), "--config-file", st.Spec.ConfFile())
	if err != nil {
		return st.error2(log, err, "start engine")
	}

	if st.Spec.UseModWSGI && st.Front.SiteExists(SiteAPI) {
		if err := st.startSites(ctx); err != nil {
			return st.error2(log, err, "start sites")
		}
	} else {
		if err := st.startProcesses(); err != nil {
			return st.error2(log, err, "start api processes")
		}
	}

	st.update(StateReady, "services running")

	return true
}

// startSites enables the front-end sites and supervises their log files so
// the api surfaces stop the same way in both modes.
func (st *StartStep) startSites(ctx context.Context) error {
	for _, s := range []string{SiteAPI, SiteCfn, SiteCloudwatch} {
		if err := st.Front.EnableSite(ctx, s); err != nil {
			return err
		}
	}

	if err := st.Front.Restart(ctx); err != nil {
		return err
	}

	for proc, bin := range map[string]string{
		ProcAPI:        "heat-wsgi-api",
		ProcCfn:        "heat-wsgi-api-cfn",
		ProcCloudwatch: "heat-wsgi-api-cloudwatch",
	} {
		err := st.Proc.Start(proc, "tail", "-F", filepath.Join(st.Spec.LogDir, bin+".log"))
		if err != nil {
			return err
		}
	}

	return nil
}

func (st *StartStep) startProcesses() error {
	for proc, bin := range map[string]string{
		ProcAPI:        "heat-api",
		ProcCfn:        "heat-api-cfn",
		ProcCloudwatch: "heat-api-cloudwatch",
	} {
		err := st.Proc.Start(proc,
			filepath.Join(st.Spec.BinDir, bin), "--config-file", st.Spec.ConfFile())
		if err != nil {
			return err
		}
	}

	return nil
}
