package health

import (
	"context"
	"errors"
)

var errNotConfigured = errors.New("client not configured")

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// Pinger is implemented by the Mongo and Redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker reports a dependency healthy when it answers a ping
type PingChecker struct {
	client Pinger
}

// NewPingChecker creates a checker over client
func NewPingChecker(client Pinger) *PingChecker {
	return &PingChecker{client: client}
}

// CheckHealth pings the dependency
func (p *PingChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return errNotConfigured
	}
	return p.client.Ping(ctx)
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}
