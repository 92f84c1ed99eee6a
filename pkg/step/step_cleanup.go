package step

import (
	"context"
	"os"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/client/apache"
	"github.com/ostacklab/heatup/pkg/config"
)

// CleanupStep removes everything Configure and Init put on disk; front-end
// sites, the credential cache, copied resources and the configuration tree.
// Fetched sources are kept so a later Install does not re-download them.
type CleanupStep struct {
	Metaa

	/* Parameters */

	// Spec is the deployment being provisioned.
	Spec *config.Deployment

	// Front manages the web front-end.
	Front apache.Fronter
}

// Meta returns a reference to the Metaa data of this Step.
func (st *CleanupStep) Meta() *Metaa {
	return &st.Metaa
}

// Execute the cleanup.
func (st *CleanupStep) Execute(ctx context.Context, log logr.Logger) bool {
	log.Info("start")

	st.update(StateRunning, "")

	if st.Spec.UseModWSGI {
		for _, s := range []string{SiteAPI, SiteCfn, SiteCloudwatch} {
			if err := st.Front.RemoveSite(s); err != nil {
				return st.error2(log, err, "remove site")
			}
		}
	}

	for _, p := range []string{
		st.Spec.AuthCacheDir,
		st.Spec.EnvironmentDir(),
		st.Spec.TemplatesDir(),
		st.Spec.ConfDir,
	} {
		if err := os.RemoveAll(p); err != nil {
			return st.error2(log, err, "remove")
		}
	}

	st.update(StateReady, "cleaned up")

	return true
}
