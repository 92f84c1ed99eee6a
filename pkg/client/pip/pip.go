// Package pip installs python packages via pip cli.
package pip

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/util/exe"
)

// Installer is able to install python packages.
type Installer interface {
	// DevelopInstall registers the package at dir as an editable/development install.
	DevelopInstall(ctx context.Context, dir string) error
}

// Pip installs packages using pip cli.
type Pip struct {
	Log logr.Logger
}

var _ Installer = &Pip{}

// DevelopInstall implements Installer.
func (p *Pip) DevelopInstall(ctx context.Context, dir string) error {
	_, _, err := exe.Run(ctx, p.Log, nil, "", "pip", "install", "-e", dir)

	return err
}
