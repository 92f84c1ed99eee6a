package step

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/client/mysql"
	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/util/exe"
)

// InitStep (re)creates the backing database schema from scratch and prepares
// the credential cache directory.
// Destructive; existing stack data is lost. It never runs implicitly as part
// of Configure or Start.
type InitStep struct {
	Metaa

	/* Parameters */

	// Spec is the deployment being provisioned.
	Spec *config.Deployment

	// DB is the database implementation to use.
	DB mysql.Databaser
}

// Meta returns a reference to the Metaa data of this Step.
func (st *InitStep) Meta() *Metaa {
	return &st.Metaa
}

// Execute the init.
func (st *InitStep) Execute(ctx context.Context, log logr.Logger) bool {
	log.Info("start")

	st.update(StateRunning, "")

	if err := st.DB.Recreate(ctx, "heat"); err != nil {
		return st.error2(log, err, "recreate database")
	}

	_, _, err := exe.Run(ctx, log, nil, "",
		filepath.Join(st.Spec.BinDir, "heat-manage"), "--config-file", st.Spec.ConfFile(), "db_sync")
	if err != nil {
		return st.error2(log, err, "schema migration")
	}

	if err := os.MkdirAll(st.Spec.AuthCacheDir, 0700); err != nil {
		return st.error2(log, err, "create auth cache dir")
	}

	st.update(StateReady, "database initialized")

	return true
}
