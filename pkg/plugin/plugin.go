// Package plugin makes contrib plugins visible to the service plugin loader.
package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/ostacklab/heatup/pkg/client/pip"
)

// Resolver installs plugins from the contrib tree of a source checkout and
// aliases their resource directories into a shared plugin directory.
//
// The alias carries the plugin name. The loader identifies a plugin by the
// deepest directory name, which is "resources" for every in-tree checkout;
// linking under the plugin name keeps the loader from coalescing them.
type Resolver struct {
	// SourceDir is the service source checkout.
	SourceDir string
	// PluginDir is the shared directory the plugin loader scans.
	PluginDir string

	Pip pip.Installer

	Log logr.Logger
}

// Resolve installs the named plugins.
// The plugin directory is rebuilt from scratch; aliases of a previous run do
// not survive. Failures are accumulated and reported in aggregate, a partial
// plugin installation is not a supported end state.
func (r *Resolver) Resolve(ctx context.Context, names []string) error {
	if err := os.RemoveAll(r.PluginDir); err != nil {
		return err
	}
	if err := os.MkdirAll(r.PluginDir, 0755); err != nil {
		return err
	}

	var errs *multierror.Error

	for _, name := range names {
		dir := filepath.Join(r.SourceDir, "contrib", name)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			errs = multierror.Append(errs, fmt.Errorf("plugin %s: no contrib directory at %s", name, dir))
			continue
		}

		if err := r.Pip.DevelopInstall(ctx, dir); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("plugin %s: %w", name, err))
			continue
		}

		target := filepath.Join(dir, name, "resources")
		if err := os.Symlink(target, filepath.Join(r.PluginDir, name)); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("plugin %s: %w", name, err))
			continue
		}

		r.Log.V(2).Info("Resolve", "plugin", name, "target", target)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%d plugin(s) failed to resolve: %w", len(errs.Errors), err)
	}

	return nil
}
