package acquire

import (
	"github.com/tklauser/numcpus"
)

// fallbackJobs is used when the core count cannot be read.
const fallbackJobs = 4

// Jobs returns the make parallelism: configured when positive, otherwise
// the number of online CPUs.
func Jobs(configured int) int {
	if configured > 0 {
		return configured
	}
	if n, err := numcpus.GetOnline(); err == nil && n > 0 {
		return n
	}
	return fallbackJobs
}
