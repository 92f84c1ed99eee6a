// Package mysql performs database maintenance via mysql cli.
package mysql

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/util/exe"
)

// Databaser is able to (re)create service databases.
type Databaser interface {
	// Recreate drops and creates database name.
	// All data in the database is lost.
	Recreate(ctx context.Context, name string) error
}

// MySQL accesses the database server with mysql cli.
type MySQL struct {
	Host     string
	User     string
	Password string

	Log logr.Logger
}

var _ Databaser = &MySQL{}

// Recreate implements Databaser.
func (m *MySQL) Recreate(ctx context.Context, name string) error {
	stmt := fmt.Sprintf("DROP DATABASE IF EXISTS %s; CREATE DATABASE %s CHARACTER SET utf8;", name, name)

	args := []string{"-u", m.User, "-h", m.Host}
	if m.Password != "" {
		args = append(args, "-p"+m.Password)
	}

	_, _, err := exe.Run(ctx, m.Log, nil, stmt, "mysql", args...)

	return err
}
