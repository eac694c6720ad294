package catalog

import (
	"fmt"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	dispatcherrors "github.com/wagiedev/better-auth-mcp/internal/errors"
)

// Scheme is the URI scheme all server resources live under.
const Scheme = "better-auth"

// Resource hosts. The host component of a resource URI names the resource.
const (
	HostConfig = "config"
	HostLogs   = "logs"
)

// Resource URIs.
const (
	ConfigURI = Scheme + "://" + HostConfig
	LogsURI   = Scheme + "://" + HostLogs
)

// Resources returns the resource catalog in its fixed declaration order.
func Resources() []*mcp.Resource {
	return []*mcp.Resource{
		configResource,
		logsResource,
	}
}

var configResource = &mcp.Resource{
	URI:         ConfigURI,
	Name:        "Better Auth Configuration",
	Description: "Current Better Auth project configuration",
	MIMEType:    "application/json",
}

var logsResource = &mcp.Resource{
	URI:         LogsURI,
	Name:        "Auth Logs",
	Description: "Recent authentication activity",
	MIMEType:    "text/plain",
}

// ParseResourceURI validates a resource URI against the catalog's scheme and
// returns the host naming the resource. The path component, when present, is
// ignored.
func ParseResourceURI(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", &dispatcherrors.UnknownResourceError{URI: raw, Reason: "Invalid URI", Err: err}
	}

	if u.Scheme != Scheme {
		return "", &dispatcherrors.UnknownResourceError{URI: raw, Reason: "Unknown protocol"}
	}

	if u.Host == "" {
		return "", &dispatcherrors.UnknownResourceError{
			URI:    raw,
			Reason: "Unknown resource",
			Err:    fmt.Errorf("missing host in %q", raw),
		}
	}

	return u.Host, nil
}
