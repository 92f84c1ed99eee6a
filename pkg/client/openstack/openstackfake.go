package openstack

import "context"

// RegistrarFake provides a Registrar for testing.
// Ids are derived from resource names so tests can predict them.
type RegistrarFake struct {
	// ServiceUsers records the names passed to CreateServiceUser.
	ServiceUsers []string
	// Services maps service name to type.
	Services map[string]string
	// Endpoints maps service name to the registered URL.
	Endpoints map[string]string
	// Roles records created role names.
	Roles []string
	// Domains records created domain names.
	Domains []string
	// Users maps user name to the domain id it was created in.
	Users map[string]string
	// DomainRoles records role grants as "role/user/domain" strings.
	DomainRoles []string
	// Err (optional) is returned by every call.
	Err error
}

var _ Registrar = &RegistrarFake{}

func (r *RegistrarFake) CreateServiceUser(ctx context.Context, name, password string) error {
	if r.Err != nil {
		return r.Err
	}
	r.ServiceUsers = append(r.ServiceUsers, name)
	return nil
}

func (r *RegistrarFake) GetOrCreateService(ctx context.Context, name, typ, description string) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	if r.Services == nil {
		r.Services = make(map[string]string)
	}
	r.Services[name] = typ
	return name + "-id", nil
}

func (r *RegistrarFake) GetOrCreateEndpoint(ctx context.Context, service, region, url string) error {
	if r.Err != nil {
		return r.Err
	}
	if r.Endpoints == nil {
		r.Endpoints = make(map[string]string)
	}
	r.Endpoints[service] = url
	return nil
}

func (r *RegistrarFake) GetOrCreateRole(ctx context.Context, name string) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	r.Roles = append(r.Roles, name)
	return name + "-id", nil
}

func (r *RegistrarFake) GetOrCreateDomain(ctx context.Context, name, description string) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	r.Domains = append(r.Domains, name)
	return name + "-id", nil
}

func (r *RegistrarFake) GetOrCreateUser(ctx context.Context, name, password, domainID string) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	if r.Users == nil {
		r.Users = make(map[string]string)
	}
	r.Users[name] = domainID
	return name + "-id", nil
}

func (r *RegistrarFake) GrantDomainRole(ctx context.Context, role, user, domainID string) error {
	if r.Err != nil {
		return r.Err
	}
	r.DomainRoles = append(r.DomainRoles, role+"/"+user+"/"+domainID)
	return nil
}
