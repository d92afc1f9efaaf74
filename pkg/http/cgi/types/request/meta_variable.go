package request

import "strings"

// Meta-variable names of RFC 3875 section 4.1.
const (
	AuthType         = "AUTH_TYPE"
	ContentLength    = "CONTENT_LENGTH"
	ContentType      = "CONTENT_TYPE"
	GatewayInterface = "GATEWAY_INTERFACE"
	PathInfo         = "PATH_INFO"
	PathTranslated   = "PATH_TRANSLATED"
	QueryString      = "QUERY_STRING"
	RemoteAddr       = "REMOTE_ADDR"
	RemoteHost       = "REMOTE_HOST"
	RequestMethod    = "REQUEST_METHOD"
	ScriptName       = "SCRIPT_NAME"
	ScriptFilename   = "SCRIPT_FILENAME"
	ServerName       = "SERVER_NAME"
	ServerPort       = "SERVER_PORT"
	ServerProtocol   = "SERVER_PROTOCOL"
	ServerSoftware   = "SERVER_SOFTWARE"
)

const HeaderVariablePrefix = "HTTP_"

// HeaderVariableName maps a header field name to its meta-variable: "User-Agent" -> "HTTP_USER_AGENT".
func HeaderVariableName(headerName string) string {
	return HeaderVariablePrefix + strings.ToUpper(strings.ReplaceAll(headerName, "-", "_"))
}

// Environment is the set of meta-variables of one invocation.
type Environment map[string]string

// FromEnviron parses "KEY=VALUE" entries as returned by os.Environ. Entries without "=" are skipped;
// a later entry overrides an earlier one.
func FromEnviron(environ []string) Environment {
	environment := make(Environment, len(environ))
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		environment[key] = value
	}
	return environment
}

func (environment Environment) Lookup(key string) (string, bool) {
	value, ok := environment[key]
	return value, ok
}

func (environment Environment) Get(key string) string {
	return environment[key]
}
