package instance

import (
	"os"

	"github.com/freightdesk/backoffice/pkg/env"
)

// GetID identifies the running process in logs. FREIGHTDESK_INSTANCE_ID wins,
// then the host name, then "<service>-0".
func GetID(service string) string {
	if id := env.Get("FREIGHTDESK_INSTANCE_ID", ""); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return service + "-0"
}
