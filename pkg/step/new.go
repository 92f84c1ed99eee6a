package step

import (
	"fmt"

	"github.com/ostacklab/heatup/pkg/client/apache"
	"github.com/ostacklab/heatup/pkg/client/mysql"
	"github.com/ostacklab/heatup/pkg/client/openstack"
	"github.com/ostacklab/heatup/pkg/client/pip"
	"github.com/ostacklab/heatup/pkg/conf"
	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/plugin"
	"github.com/ostacklab/heatup/pkg/source"
	"github.com/ostacklab/heatup/pkg/supervisor"
)

// Tools are the external dependencies steps are built with.
type Tools struct {
	Spec      *config.Deployment
	Sources   *source.Sources
	Assembler *conf.Assembler
	Plugins   *plugin.Resolver
	Pip       pip.Installer
	DB        mysql.Databaser
	Identity  openstack.Registrar
	Front     apache.Fronter
	Proc      supervisor.Supervisor
}

// New returns a Step of the given type wired with the given tools.
func New(t Type, tools Tools, hash string) (Step, error) {
	var r Step

	switch t {
	case TypeInstall:
		r = &InstallStep{
			Spec:    tools.Spec,
			Sources: tools.Sources,
			Pip:     tools.Pip,
			Front:   tools.Front,
		}
	case TypeConfigure:
		r = &ConfigureStep{
			Spec:      tools.Spec,
			Sources:   tools.Sources,
			Assembler: tools.Assembler,
			Plugins:   tools.Plugins,
			Front:     tools.Front,
		}
	case TypeAccounts:
		r = &AccountsStep{
			Spec:     tools.Spec,
			Identity: tools.Identity,
		}
	case TypeInit:
		r = &InitStep{
			Spec: tools.Spec,
			DB:   tools.DB,
		}
	case TypeStart:
		r = &StartStep{
			Spec:  tools.Spec,
			Proc:  tools.Proc,
			Front: tools.Front,
		}
	case TypeStop:
		r = &StopStep{
			Spec:  tools.Spec,
			Proc:  tools.Proc,
			Front: tools.Front,
		}
	case TypeCleanup:
		r = &CleanupStep{
			Spec:  tools.Spec,
			Front: tools.Front,
		}
	default:
		return nil, fmt.Errorf("unexpected step: %v", t)
	}

	r.Meta().ID = ID{Type: t}
	r.Meta().Hash = hash

	return r, nil
}
