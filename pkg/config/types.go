// Package config defines the deployment parameters of a heat installation.
//
// A Deployment is constructed once at process start and passed by reference
// into each lifecycle operation. Components never read ambient environment
// state themselves.
package config

// SourceSpec specifies the location of a source repository.
type SourceSpec struct {
	// Type is "git" or "local" (local is mostly used for testing).
	Type string `mapstructure:"type"`
	// URL of the repo, for Type=local it is a filesystem path.
	URL string `mapstructure:"url"`
	// Ref is the git branch or tag to checkout, ignored for Type=local.
	Ref string `mapstructure:"ref"`
}

// Deployment holds all parameters of a heat deployment.
// Zero values are replaced by Defaults() values at load time, so every field
// listed here has a documented default.
type Deployment struct {
	/* Paths */

	// RootPath is the root of the working directories; source checkouts go in
	// "<RootPath>/workspace", pid files in "<RootPath>/run", deployment state
	// in "<RootPath>/state.json". Default /opt/stack/heatup.
	RootPath string `mapstructure:"rootPath"`
	// ConfDir is the heat configuration directory. Default /etc/heat.
	// The main config file, environment.d and templates live here.
	ConfDir string `mapstructure:"confDir"`
	// AuthCacheDir caches identity credentials. Default /var/cache/heat.
	AuthCacheDir string `mapstructure:"authCacheDir"`
	// LogDir receives process and front-end logs. Default /var/log/heat.
	LogDir string `mapstructure:"logDir"`
	// BinDir contains the installed heat binaries. Default /usr/local/bin.
	BinDir string `mapstructure:"binDir"`

	/* Sources */

	// Repo is the heat service repository. Default git upstream at master.
	Repo SourceSpec `mapstructure:"repo"`
	// ClientRepo is the heat client library repository. Default git upstream at master.
	ClientRepo SourceSpec `mapstructure:"clientRepo"`

	/* Service identity */

	// ServiceHost is the address the service catalog endpoints refer to. Default 127.0.0.1.
	ServiceHost string `mapstructure:"serviceHost"`
	// ServiceProtocol is http or https. Default http.
	ServiceProtocol string `mapstructure:"serviceProtocol"`
	// ServicePassword is the password of the heat service user. Default "secret".
	ServicePassword string `mapstructure:"servicePassword"`
	// Region is the region name the endpoints are registered in. Default RegionOne.
	Region string `mapstructure:"region"`
	// AuthURI is the identity service URI the heat clients use. Default http://127.0.0.1/identity.
	AuthURI string `mapstructure:"authURI"`

	/* API surfaces */

	// BindHost is the address the API processes bind to. Default 0.0.0.0.
	BindHost string `mapstructure:"bindHost"`
	// APIPort is the orchestration API port. Default 8004.
	APIPort int `mapstructure:"apiPort"`
	// CfnPort is the CloudFormation-compatible API port. Default 8000.
	CfnPort int `mapstructure:"cfnPort"`
	// CloudwatchPort is the CloudWatch-compatible API port. Default 8003.
	CloudwatchPort int `mapstructure:"cloudwatchPort"`
	// EngineWorkers is the number of engine worker processes. Default 4.
	EngineWorkers int `mapstructure:"engineWorkers"`
	// APIWorkers is the number of front-end processes per API. Default 2.
	APIWorkers int `mapstructure:"apiWorkers"`

	/* Behavior toggles (all default false) */

	// Debug enables debug logging in the service.
	Debug bool `mapstructure:"debug"`
	// LogColor enables colorized log formats in the service.
	LogColor bool `mapstructure:"logColor"`
	// Standalone deploys heat without a backing identity service.
	Standalone bool `mapstructure:"standalone"`
	// StackDomain creates a dedicated administrative domain for stack-created users.
	StackDomain bool `mapstructure:"stackDomain"`
	// StackAdoptAbandon enables both the stack adopt and the stack abandon features.
	// The two cannot be toggled independently.
	StackAdoptAbandon bool `mapstructure:"stackAdoptAbandon"`
	// CacheEnabled turns on the service resource cache.
	CacheEnabled bool `mapstructure:"cacheEnabled"`
	// BackupsEnabled asks for volume backup support. It is forced off when
	// VolumeBackups is false, see the assembler.
	BackupsEnabled bool `mapstructure:"backupsEnabled"`
	// VolumeBackups is true when the deployment runs a backup-capable block-storage service.
	VolumeBackups bool `mapstructure:"volumeBackups"`
	// UseModWSGI serves the three APIs from the apache front end instead of bare processes.
	UseModWSGI bool `mapstructure:"useModWSGI"`

	/* Auth */

	// DeferredAuth is "password" or "trusts"; empty defaults to trusts.
	DeferredAuth string `mapstructure:"deferredAuth"`
	// TrusteeUser defaults to the heat service user.
	TrusteeUser string `mapstructure:"trusteeUser"`
	// TrusteePassword defaults to ServicePassword.
	TrusteePassword string `mapstructure:"trusteePassword"`
	// TrusteeDomain is the domain of the trustee user. Default "default".
	TrusteeDomain string `mapstructure:"trusteeDomain"`

	/* TLS */

	// SSLBundleFile is the CA bundle handed to SSL-enabled clients.
	SSLBundleFile string `mapstructure:"sslBundleFile"`
	// KeystoneSSL, NovaSSL, CinderSSL flag the downstream services that terminate TLS themselves.
	KeystoneSSL bool `mapstructure:"keystoneSSL"`
	NovaSSL     bool `mapstructure:"novaSSL"`
	CinderSSL   bool `mapstructure:"cinderSSL"`
	// TLSProxy is true when a TLS-terminating proxy fronts the deployment.
	TLSProxy bool `mapstructure:"tlsProxy"`
	// TLSCertFile/TLSKeyFile are used by the apache sites when UseSSL is set.
	UseSSL      bool   `mapstructure:"useSSL"`
	TLSCertFile string `mapstructure:"tlsCertFile"`
	TLSKeyFile  string `mapstructure:"tlsKeyFile"`

	/* Plugins */

	// Plugins are the contrib plugins to make visible to the service plugin loader.
	Plugins []string `mapstructure:"plugins"`

	/* Front end */

	// User is the user the front-end processes run as. Default stack.
	User string `mapstructure:"user"`
	// SitesDir is where generated front-end site files go. Default /etc/apache2/sites-available.
	SitesDir string `mapstructure:"sitesDir"`

	/* Database */

	// DatabaseURL is the connection URL of the heat database.
	DatabaseURL string `mapstructure:"databaseURL"`
}
