package step

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/client/apache"
	"github.com/ostacklab/heatup/pkg/client/pip"
	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/source"
)

// InstallStep fetches the service and client library sources at their pinned
// refs and registers them as development packages.
// No network services are started.
type InstallStep struct {
	Metaa

	/* Parameters */

	// Spec is the deployment being provisioned.
	Spec *config.Deployment

	// Sources maintains the local source copies.
	Sources *source.Sources
	// Pip is the package installer to use.
	Pip pip.Installer
	// Front is the front-end implementation to use.
	Front apache.Fronter
}

// Meta returns a reference to the Metaa data of this Step.
func (st *InstallStep) Meta() *Metaa {
	return &st.Metaa
}

// Execute the install.
func (st *InstallStep) Execute(ctx context.Context, log logr.Logger) bool {
	log.Info("start")

	st.update(StateRunning, "")

	if err := st.Sources.FetchAll(ctx); err != nil {
		return st.error2(log, err, "fetch sources")
	}

	// client library first, the service depends on it.
	for _, name := range []string{WorkspaceClient, WorkspaceHeat} {
		if _, err := st.Sources.Get(name); err != nil {
			return st.error2(log, err, "get workspace")
		}

		w, _ := st.Sources.Workspace(name)
		if err := st.Pip.DevelopInstall(ctx, w.Path); err != nil {
			return st.error2(log, err, fmt.Sprintf("install %s", name))
		}
	}

	if st.Spec.UseModWSGI {
		if err := st.Front.EnableModule(ctx, "wsgi"); err != nil {
			return st.error2(log, err, "enable front-end module")
		}
	}

	st.update(StateReady, "sources installed")

	return true
}
