// Package discovery locates peers by sequential probing: ports are
// tried one after another on the local host, starting from the default
// port, until a probe answers (or stops answering) the way the caller
// wants.
package discovery

import (
	"context"
	"time"

	"diststore/internal/gossip"
	"diststore/internal/location"
)

const (
	// DefaultAttempts is the attempt count callers pass to
	// PingUntilReturn; the port scans take their own maximum.
	DefaultAttempts = 10
	// waitPeriod seeds the exponential back-off in PingUntilReturn.
	waitPeriod = 10 * time.Millisecond
)

// Prober is the probe surface: a liveness ping plus the service name
// of whatever answers at a location.
type Prober interface {
	Ping(ctx context.Context, dest location.Location) error
	ServiceType(ctx context.Context, dest location.Location) (string, error)
}

// FindMatchingService scans sequential ports from start for the first
// peer announcing the wanted service type. The second return is false
// when the scan drains without a match.
func FindMatchingService(ctx context.Context, p Prober, start location.Location, service string, maximum int) (location.Location, bool) {
	loc := start
	for a := 0; a < maximum; a++ {
		got, err := p.ServiceType(ctx, loc)
		if err == nil && got == service {
			return loc, true
		}
		loc.Port++
	}
	return location.Location{}, false
}

// PingUntilFound returns the first sequential port from start that
// answers ping. The scan draining is a NodeNotFoundError for the
// location one port past the last one probed.
func PingUntilFound(ctx context.Context, p Prober, start location.Location, maximum int) (location.Location, error) {
	loc := start
	for a := 0; a < maximum; a++ {
		if err := p.Ping(ctx, loc); err == nil {
			return loc, nil
		}
		loc.Port++
	}
	return location.Location{}, &gossip.NodeNotFoundError{Location: loc}
}

// PingUntilNotFound returns the first sequential port from start that
// does not answer ping: a free port the caller can bind itself.
func PingUntilNotFound(ctx context.Context, p Prober, start location.Location, maximum int) (location.Location, error) {
	loc := start
	for a := 0; a < maximum; a++ {
		if err := p.Ping(ctx, loc); err != nil {
			return loc, nil
		}
		loc.Port++
	}
	return location.Location{}, &gossip.NodeNotFoundError{Location: loc}
}

// PingUntilReturn waits for dest itself to start answering, sleeping
// with exponential back-off between attempts. There is no absolute
// deadline beyond the attempt count; the context can still cancel a
// sleep in progress.
func PingUntilReturn(ctx context.Context, p Prober, dest location.Location, attempts int) error {
	wait := waitPeriod
	for a := 0; a < attempts; a++ {
		if err := p.Ping(ctx, dest); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
	return &gossip.NodeNotFoundError{Location: dest}
}
