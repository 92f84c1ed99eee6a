// Package conf produces the heat service configuration file.
package conf

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/go-ini/ini"
	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/config"
)

func init() {
	// oslo style configs need the [DEFAULT] header spelled out.
	ini.DefaultHeader = true
}

// ConflictError flags mutually incompatible deployment settings.
// It is not recoverable; the run must abort.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "configuration conflict: " + e.Reason
}

// Assembler writes the service configuration file from a Deployment.
type Assembler struct {
	// KeyGen generates the auth encryption key. Defaults to RandomKey.
	// A run never reuses the key of a previous run.
	KeyGen func() (string, error)

	Log logr.Logger
}

// RandomKey returns a fresh 32 char hex key.
func RandomKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Assemble writes the configuration file at d.ConfFile().
// A stale file from a previous run is removed first; every key is written
// exactly once.
func (a *Assembler) Assemble(d *config.Deployment) error {
	if d.Standalone && d.DeferredAuth != config.DeferredAuthPassword {
		return &ConflictError{
			Reason: fmt.Sprintf("deferred auth %q requires an identity service, standalone mode has none (set deferredAuth: password)",
				authOrDefault(d.DeferredAuth)),
		}
	}

	path := d.ConfFile()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	keyGen := a.KeyGen
	if keyGen == nil {
		keyGen = RandomKey
	}
	key, err := keyGen()
	if err != nil {
		return fmt.Errorf("auth encryption key: %w", err)
	}

	f := ini.Empty()
	set := func(section, k, v string) {
		f.Section(section).Key(k).SetValue(v)
	}

	set("DEFAULT", "debug", boolStr(d.Debug))
	if d.LogColor {
		set("DEFAULT", "logging_context_format_string", colorFormat)
	}
	set("DEFAULT", "auth_encryption_key", key)
	set("DEFAULT", "region_name_for_services", d.Region)
	set("DEFAULT", "num_engine_workers", fmt.Sprintf("%d", d.EngineWorkers))
	set("DEFAULT", "heat_metadata_server_url", d.ServiceURL(d.CfnPort))
	set("DEFAULT", "heat_waitcondition_server_url", d.ServiceURL(d.CfnPort)+"/v1/waitcondition")
	set("DEFAULT", "heat_watch_server_url", d.ServiceURL(d.CloudwatchPort))
	if d.DeferredAuth != "" {
		set("DEFAULT", "deferred_auth_method", d.DeferredAuth)
	}

	// Adopt and abandon are one feature pair, never toggled independently.
	set("DEFAULT", "enable_stack_adopt", boolStr(d.StackAdoptAbandon))
	set("DEFAULT", "enable_stack_abandon", boolStr(d.StackAdoptAbandon))

	set("database", "connection", d.DatabaseURL)

	// Unset deferred auth means trusts.
	if d.DeferredAuth != config.DeferredAuthPassword {
		set("trustee", "auth_type", "password")
		set("trustee", "auth_url", d.AuthURI)
		set("trustee", "username", valueOr(d.TrusteeUser, ServiceUser))
		set("trustee", "password", valueOr(d.TrusteePassword, d.ServicePassword))
		set("trustee", "user_domain_id", d.TrusteeDomain)
	}

	set("clients_keystone", "auth_uri", d.AuthURI)

	// Three independent checks, one per downstream client.
	if d.KeystoneSSL || d.TLSProxy {
		set("clients_keystone", "ca_file", d.SSLBundleFile)
	}
	if d.NovaSSL || d.TLSProxy {
		set("clients_nova", "ca_file", d.SSLBundleFile)
	}
	if d.CinderSSL || d.TLSProxy {
		set("clients_cinder", "ca_file", d.SSLBundleFile)
	}

	set("heat_api", "bind_host", d.BindHost)
	set("heat_api", "bind_port", fmt.Sprintf("%d", d.APIPort))
	set("heat_api_cfn", "bind_host", d.BindHost)
	set("heat_api_cfn", "bind_port", fmt.Sprintf("%d", d.CfnPort))
	set("heat_api_cloudwatch", "bind_host", d.BindHost)
	set("heat_api_cloudwatch", "bind_port", fmt.Sprintf("%d", d.CloudwatchPort))

	if d.CacheEnabled {
		set("cache", "enabled", "True")
	}

	// Backups require a backup-capable block-storage service; without it the
	// flag is forced off no matter what was asked for.
	set("volumes", "backups_enabled", boolStr(d.BackupsEnabled && d.VolumeBackups))

	if d.Standalone {
		set("paste_deploy", "flavor", "standalone")
		set("clients_heat", "url", d.ServiceURL(d.APIPort)+"/v1/%(tenant_id)s")
	}

	a.Log.V(2).Info("Assemble", "path", path)

	return f.SaveTo(path)
}

// WriteStackDomain writes the stack domain id and domain admin credentials
// into an existing configuration file.
// This is the only write that happens outside Assemble; the domain id does
// not exist until identity registration ran.
func WriteStackDomain(path, domainID, adminUser, adminPassword string) error {
	f, err := ini.Load(path)
	if err != nil {
		return err
	}

	f.Section("DEFAULT").Key("stack_user_domain_id").SetValue(domainID)
	f.Section("DEFAULT").Key("stack_domain_admin").SetValue(adminUser)
	f.Section("DEFAULT").Key("stack_domain_admin_password").SetValue(adminPassword)

	return f.SaveTo(path)
}

// ServiceUser is the identity the service itself acts as.
const ServiceUser = "heat"

// ColorFormat is the oslo context log format with ANSI colors.
const colorFormat = `%(asctime)s %(color)s%(levelname)s %(name)s [%(request_id)s %(project_name)s] %(instance)s%(color)s%(message)s`

func boolStr(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func valueOr(v, alt string) string {
	if v == "" {
		return alt
	}
	return v
}

func authOrDefault(v string) string {
	if v == "" {
		return config.DeferredAuthTrusts
	}
	return v
}
