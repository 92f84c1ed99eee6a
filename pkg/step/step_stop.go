package step

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/client/apache"
	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/supervisor"
)

// StopStep halts all running services.
// Stopping a service that is not running is not an error, so Stop can be
// repeated and can follow a partially failed Start.
type StopStep struct {
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
func (st *StopStep) Meta() *Metaa {
	return &st.Metaa
}

// Execute the stop.
func (st *StopStep) Execute(ctx context.Context, log logr.Logger) bool {
	log.Info("start")

	st.update(StateRunning, "")

	if err := st.Proc.Stop(ProcEngine); err != nil {
		return st.error2(log, err, "stop engine")
	}

	if st.Spec.UseModWSGI && st.Front.SiteExists(SiteAPI) {
		for _, s := range []string{SiteAPI, SiteCfn, SiteCloudwatch} {
			if err := st.Front.DisableSite(ctx, s); err != nil {
				return st.error2(log, err, "disable site")
			}
		}
		if err := st.Front.Restart(ctx); err != nil {
			return st.error2(log, err, "restart front-end")
		}
	}

	for _, p := range []string{ProcAPI, ProcCfn, ProcCloudwatch} {
		if err := st.Proc.Stop(p); err != nil {
			return st.error2(log, err, "stop api process")
		}
	}

	st.update(StateReady, "services stopped")

	return true
}
