// Package openstack registers identities and service catalog entries via openstack cli.
package openstack

import (
	"context"
	"strings"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/util/exe"
)

// Registrar is able to register users, roles, domains and service catalog
// entries with the identity service.
// All GetOrCreate methods are idempotent and return the id of the resource.
type Registrar interface {
	// CreateServiceUser creates user name in the service project with the
	// service role.
	CreateServiceUser(ctx context.Context, name, password string) error
	// GetOrCreateService registers a service catalog entry.
	GetOrCreateService(ctx context.Context, name, typ, description string) (string, error)
	// GetOrCreateEndpoint registers the public, admin and internal endpoint
	// of service in region. The three URLs are identical here.
	GetOrCreateEndpoint(ctx context.Context, service, region, url string) error
	// GetOrCreateRole creates role name.
	GetOrCreateRole(ctx context.Context, name string) (string, error)
	// GetOrCreateDomain creates domain name.
	GetOrCreateDomain(ctx context.Context, name, description string) (string, error)
	// GetOrCreateUser creates user name inside the domain.
	GetOrCreateUser(ctx context.Context, name, password, domainID string) (string, error)
	// GrantDomainRole grants role to user within the domain.
	GrantDomainRole(ctx context.Context, role, user, domainID string) error
}

// CLI accesses the identity service with openstack cli.
type CLI struct {
	// Env (optional) is the execution environment, typically OS_* credentials.
	Env []string

	Log logr.Logger
}

var _ Registrar = &CLI{}

const serviceProject = "service"

// CreateServiceUser implements Registrar.
func (c *CLI) CreateServiceUser(ctx context.Context, name, password string) error {
	_, err := c.run(ctx, "user", "create", name, "--password", password, "--project", serviceProject, "--or-show")
	if err != nil {
		return err
	}

	_, err = c.run(ctx, "role", "add", "service", "--user", name, "--project", serviceProject)

	return err
}

// GetOrCreateService implements Registrar.
func (c *CLI) GetOrCreateService(ctx context.Context, name, typ, description string) (string, error) {
	id, err := c.run(ctx, "service", "show", name, "-f", "value", "-c", "id")
	if err == nil {
		return id, nil
	}

	return c.run(ctx, "service", "create", typ, "--name", name, "--description", description, "-f", "value", "-c", "id")
}

// GetOrCreateEndpoint implements Registrar.
func (c *CLI) GetOrCreateEndpoint(ctx context.Context, service, region, url string) error {
	for _, iface := range []string{"public", "admin", "internal"} {
		id, err := c.run(ctx, "endpoint", "list", "--service", service, "--interface", iface, "--region", region, "-f", "value", "-c", "ID")
		if err == nil && id != "" {
			continue
		}

		_, err = c.run(ctx, "endpoint", "create", service, iface, url, "--region", region)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetOrCreateRole implements Registrar.
func (c *CLI) GetOrCreateRole(ctx context.Context, name string) (string, error) {
	return c.run(ctx, "role", "create", name, "--or-show", "-f", "value", "-c", "id")
}

// GetOrCreateDomain implements Registrar.
func (c *CLI) GetOrCreateDomain(ctx context.Context, name, description string) (string, error) {
	id, err := c.run(ctx, "domain", "show", name, "-f", "value", "-c", "id")
	if err == nil {
		return id, nil
	}

	return c.run(ctx, "domain", "create", name, "--description", description, "-f", "value", "-c", "id")
}

// GetOrCreateUser implements Registrar.
func (c *CLI) GetOrCreateUser(ctx context.Context, name, password, domainID string) (string, error) {
	return c.run(ctx, "user", "create", name, "--password", password, "--domain", domainID, "--or-show", "-f", "value", "-c", "id")
}

// GrantDomainRole implements Registrar.
func (c *CLI) GrantDomainRole(ctx context.Context, role, user, domainID string) error {
	_, err := c.run(ctx, "role", "add", role, "--user", user, "--domain", domainID, "--user-domain", domainID)

	return err
}

// Run openstack cli and return the first line of output.
func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	var opt *exe.Opt
	if c.Env != nil {
		opt = &exe.Opt{Env: c.Env}
	}

	o, _, err := exe.Run(ctx, c.Log, opt, "", "openstack", args...)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.SplitN(o, "\n", 2)[0]), nil
}
