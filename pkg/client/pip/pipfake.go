package pip

import "context"

// InstallerFake provides an Installer for testing.
type InstallerFake struct {
	// Installed records the directories passed to DevelopInstall.
	Installed []string
	// Err (optional) is returned by every call.
	Err error
}

var _ Installer = &InstallerFake{}

func (p *InstallerFake) DevelopInstall(ctx context.Context, dir string) error {
	if p.Err != nil {
		return p.Err
	}
	p.Installed = append(p.Installed, dir)
	return nil
}
