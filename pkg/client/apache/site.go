package apache

import (
	"io"

	"github.com/ostacklab/heatup/pkg/tmplt"
)

// SiteValues parameterize a mod_wsgi virtual host definition.
// Fields are referenced by name from the template; renaming one is a template
// change.
type SiteValues struct {
	// Port the virtual host listens on.
	Port int
	// Binary is the server binary name, for example heat-wsgi-api.
	Binary string
	// BinDir is the directory containing Binary.
	BinDir string
	// User/Group the daemon processes run as.
	User  string
	Group string
	// Processes is the number of daemon processes.
	Processes int
	// LogDir receives the error and access logs.
	LogDir string
	// SSLEngine enables TLS with SSLCertFile/SSLKeyFile.
	SSLEngine   bool
	SSLCertFile string
	SSLKeyFile  string
	// VirtualEnv (optional) is the python virtual environment to activate.
	// Reserved, not set by any caller yet.
	VirtualEnv string
}

const siteTemplate = `Listen {{ .Port }}

<VirtualHost *:{{ .Port }}>
    WSGIDaemonProcess {{ .Binary }} processes={{ .Processes }} threads=1 user={{ .User }} group={{ .Group }} display-name=%{GROUP}{{ if .VirtualEnv }} python-home={{ .VirtualEnv }}{{ end }}
    WSGIProcessGroup {{ .Binary }}
    WSGIScriptAlias / {{ .BinDir }}/{{ .Binary }}
    WSGIApplicationGroup %{GLOBAL}
    WSGIPassAuthorization On
    AllowEncodedSlashes On
    ErrorLogFormat "%M"
    ErrorLog {{ .LogDir }}/{{ .Binary }}.log
    CustomLog {{ .LogDir }}/{{ .Binary }}_access.log combined
{{- if .SSLEngine }}
    SSLEngine On
    SSLCertificateFile {{ .SSLCertFile }}
    SSLCertificateKeyFile {{ .SSLKeyFile }}
{{- end }}

    <Directory {{ .BinDir }}>
        Require all granted
    </Directory>
</VirtualHost>
`

func renderSite(name string, out io.Writer, values SiteValues) error {
	return tmplt.Expand(name, siteTemplate, out, values)
}
