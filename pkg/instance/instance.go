package instance

import (
	"os"

	"github.com/luxtime/luxtime-backend/pkg/env"
)

// GetID identifies this process in logs. It prefers an explicit
// INSTANCE_ID, then the platform dyno name, then the host name.
func GetID() string {
	for _, key := range []string{"INSTANCE_ID", "DYNO"} {
		if id := env.Get(key, ""); id != "" {
			return id
		}
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
