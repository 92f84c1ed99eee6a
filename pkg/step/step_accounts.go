package step

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/client/openstack"
	"github.com/ostacklab/heatup/pkg/conf"
	"github.com/ostacklab/heatup/pkg/config"
)

// AccountsStep registers the service identity, the catalog entries and the
// stack user role. With a stack domain it also creates the domain and its
// admin and writes both back into the config file; that write can only happen
// after registration because the domain id does not exist before.
//
// The cloudwatch API is started as a process but deliberately has no catalog
// entry of its own.
type AccountsStep struct {
	Metaa

	/* Parameters */

	// Spec is the deployment being provisioned.
	Spec *config.Deployment

	// Identity is the registrar implementation to use.
	Identity openstack.Registrar
}

// Meta returns a reference to the Metaa data of this Step.
func (st *AccountsStep) Meta() *Metaa {
	return &st.Metaa
}

// Execute the account registration.
func (st *AccountsStep) Execute(ctx context.Context, log logr.Logger) bool {
	log.Info("start")

	st.update(StateRunning, "")

	if err := st.Identity.CreateServiceUser(ctx, conf.ServiceUser, st.Spec.ServicePassword); err != nil {
		return st.error2(log, err, "create service user")
	}

	if _, err := st.Identity.GetOrCreateService(ctx, "heat", "orchestration", "Heat Orchestration Service"); err != nil {
		return st.error2(log, err, "register orchestration service")
	}
	err := st.Identity.GetOrCreateEndpoint(ctx, "heat", st.Spec.Region,
		st.Spec.ServiceURL(st.Spec.APIPort)+"/v1/%(tenant_id)s")
	if err != nil {
		return st.error2(log, err, "register orchestration endpoint")
	}

	if _, err := st.Identity.GetOrCreateService(ctx, "heat-cfn", "cloudformation", "Heat CloudFormation Service"); err != nil {
		return st.error2(log, err, "register cloudformation service")
	}
	err = st.Identity.GetOrCreateEndpoint(ctx, "heat-cfn", st.Spec.Region,
		st.Spec.ServiceURL(st.Spec.CfnPort)+"/v1")
	if err != nil {
		return st.error2(log, err, "register cloudformation endpoint")
	}

	// role that tags the accounts heat creates for end users.
	if _, err := st.Identity.GetOrCreateRole(ctx, "heat_stack_user"); err != nil {
		return st.error2(log, err, "create stack user role")
	}

	if st.Spec.StackDomain {
		if ok := st.stackDomain(ctx, log); !ok {
			return false
		}
	}

	st.update(StateReady, "accounts registered")

	return true
}

func (st *AccountsStep) stackDomain(ctx context.Context, log logr.Logger) bool {
	domainID, err := st.Identity.GetOrCreateDomain(ctx, "heat", "Owns users and projects created by heat")
	if err != nil {
		return st.error2(log, err, "create stack domain")
	}

	const admin = "heat_domain_admin"
	if _, err := st.Identity.GetOrCreateUser(ctx, admin, st.Spec.ServicePassword, domainID); err != nil {
		return st.error2(log, err, "create domain admin")
	}

	if err := st.Identity.GrantDomainRole(ctx, "admin", admin, domainID); err != nil {
		return st.error2(log, err, "grant domain admin role")
	}

	if err := conf.WriteStackDomain(st.Spec.ConfFile(), domainID, admin, st.Spec.ServicePassword); err != nil {
		return st.error2(log, err, "write stack domain config")
	}

	return true
}
