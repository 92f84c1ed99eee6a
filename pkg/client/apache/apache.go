// Package apache manages the HTTP front end that can host the API services.
package apache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/util/exe"
)

// Fronter is able to install, enable and disable virtual host sites and to
// restart the front-end server.
type Fronter interface {
	// EnableModule enables a server module, for example wsgi.
	EnableModule(ctx context.Context, name string) error
	// InstallSite renders the virtual host definition for values and installs
	// it under name. An existing definition is overwritten.
	InstallSite(name string, values SiteValues) error
	// SiteExists tells if a site definition named name is installed.
	SiteExists(name string) bool
	// EnableSite enables a site. A restart is needed to serve it.
	EnableSite(ctx context.Context, name string) error
	// DisableSite disables a site.
	DisableSite(ctx context.Context, name string) error
	// RemoveSite removes the site definition file.
	RemoveSite(name string) error
	// Restart restarts the front-end server.
	Restart(ctx context.Context) error
}

// Apache manages an apache2 server with mod_wsgi.
type Apache struct {
	// SitesDir is the sites-available directory.
	SitesDir string

	Log logr.Logger
}

var _ Fronter = &Apache{}

// EnableModule implements Fronter.
func (a *Apache) EnableModule(ctx context.Context, name string) error {
	_, _, err := exe.Run(ctx, a.Log, nil, "", "a2enmod", name)

	return err
}

// InstallSite implements Fronter.
func (a *Apache) InstallSite(name string, values SiteValues) error {
	if err := os.MkdirAll(a.SitesDir, 0755); err != nil {
		return err
	}

	f, err := os.Create(a.sitePath(name))
	if err != nil {
		return err
	}
	defer f.Close()

	return renderSite(name, f, values)
}

// SiteExists implements Fronter.
func (a *Apache) SiteExists(name string) bool {
	_, err := os.Stat(a.sitePath(name))

	return err == nil
}

// EnableSite implements Fronter.
func (a *Apache) EnableSite(ctx context.Context, name string) error {
	_, _, err := exe.Run(ctx, a.Log, nil, "", "a2ensite", name)

	return err
}

// DisableSite implements Fronter.
func (a *Apache) DisableSite(ctx context.Context, name string) error {
	_, _, err := exe.Run(ctx, a.Log, nil, "", "a2dissite", name)

	return err
}

// RemoveSite implements Fronter.
func (a *Apache) RemoveSite(name string) error {
	err := os.Remove(a.sitePath(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Restart implements Fronter.
func (a *Apache) Restart(ctx context.Context) error {
	_, _, err := exe.Run(ctx, a.Log, nil, "", "systemctl", "restart", "apache2")

	return err
}

func (a *Apache) sitePath(name string) string {
	return filepath.Join(a.SitesDir, name+".conf")
}
