package step

// Names of the supervised processes.
// In front-end mode the three API names supervise log tails instead.
const (
	ProcEngine     = "h-eng"
	ProcAPI        = "h-api"
	ProcCfn        = "h-api-cfn"
	ProcCloudwatch = "h-api-cw"
)

// Names of the front-end sites. There is no cloudwatch catalog entry but
// there is a cloudwatch site.
const (
	SiteAPI        = "heat-api"
	SiteCfn        = "heat-api-cfn"
	SiteCloudwatch = "heat-api-cloudwatch"
)

// Names of the source workspaces.
const (
	WorkspaceHeat   = "heat"
	WorkspaceClient = "heatclient"
)
