package probe

import (
	"context"
	"fmt"
	"time"
)

// Prober defines health probing for a database environment.
// All implementations must be safe for concurrent use.
type Prober interface {
	// Probe connects to the environment, verifies liveness and collects
	// server metadata. The connection is closed before returning.
	Probe(ctx context.Context, dsn string) (*Report, error)
}

// Status is the health state of an environment as last observed.
type Status int

const (
	StatusUnknown Status = iota
	StatusChecking
	StatusUp
	StatusDown
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	default:
		return "unknown"
	}
}

// Report holds the result of a successful probe.
type Report struct {
	ServerVersion string
	Database      string
	SizeBytes     int64
	ActiveConns   int
	Latency       time.Duration
}

// FormatSize renders a byte count in a human-readable form.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
