package gossip

import (
	"context"
	"errors"
	"fmt"
	"log"

	"diststore/internal/location"
	"diststore/internal/ring"
)

// NodeNotFoundError reports a connect- or transport-level failure
// talking to a named peer. Routers and the engine convert it into a
// cascading removal; protocol-level errors pass through untouched.
type NodeNotFoundError struct {
	Location location.Location
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node not found: %s", e.Location)
}

// IsNodeNotFound reports whether err marks an unreachable peer and
// returns its location.
func IsNodeNotFound(err error) (location.Location, bool) {
	var nnf *NodeNotFoundError
	if errors.As(err, &nnf) {
		return nnf.Location, true
	}
	return location.Location{}, false
}

// Caller is the outbound surface the engine forwards events over.
type Caller interface {
	Add(ctx context.Context, dest, loc location.Location, authorities []location.Location) error
	Remove(ctx context.Context, dest, loc location.Location, authorities []location.Location) error
}

// Engine propagates membership events along authority-annotated
// chains. Every hop appends itself to the authority list and contacts
// the first live peer not yet on it, so one event costs O(n) messages
// instead of a broadcast flood. Dead peers are discovered only when a
// hop fails to reach them (lazy invalidation, no heartbeat).
type Engine struct {
	self   location.Location
	ring   *ring.Ring
	caller Caller
}

// New creates an engine mutating r on behalf of self.
func New(self location.Location, r *ring.Ring, caller Caller) *Engine {
	return &Engine{self: self, ring: r, caller: caller}
}

// Add gossips a new peer and then inserts it into the local ring. The
// local insertion happens after forwarding, as in the chain protocol:
// the originator's own view updates last, and membership still
// converges once the chain terminates.
func (e *Engine) Add(ctx context.Context, loc location.Location, authorities []location.Location) error {
	authorities = append(authorities, e.self)
	err := e.forward(ctx, authorities, func(dest location.Location) error {
		return e.caller.Add(ctx, dest, loc, authorities)
	})
	if err != nil {
		return err
	}
	e.ring.Add(loc.String())
	log.Printf("[%s] added %s", e.self, loc)
	return nil
}

// Remove drops a peer from the local ring, then forwards the removal
// along the chain. Removing a peer the ring never knew about is a
// silent no-op locally; the chain still runs.
func (e *Engine) Remove(ctx context.Context, loc location.Location, authorities []location.Location) error {
	e.ring.Remove(loc.String())
	authorities = append(authorities, e.self)
	err := e.forward(ctx, authorities, func(dest location.Location) error {
		return e.caller.Remove(ctx, dest, loc, authorities)
	})
	if err != nil {
		return err
	}
	log.Printf("[%s] removed %s", e.self, loc)
	return nil
}

// CascadeRemove evicts a peer discovered dead during another
// operation. The authority list is saturated with every node currently
// known, so the recovery traffic cannot multiply.
func (e *Engine) CascadeRemove(ctx context.Context, dead location.Location) {
	if err := e.Remove(ctx, dead, e.allNodes()); err != nil {
		log.Printf("[%s] cascade remove %s: %v", e.self, dead, err)
	}
}

// forward walks the sorted candidate set, stopping at the first peer
// that takes the event. A candidate found dead is cascade-removed and
// the walk continues; an empty candidate set means the event reached
// its local horizon.
func (e *Engine) forward(ctx context.Context, authorities []location.Location, call func(dest location.Location) error) error {
	for _, dest := range e.candidates(authorities) {
		err := call(dest)
		if err == nil {
			return nil
		}
		if dead, ok := IsNodeNotFound(err); ok {
			e.CascadeRemove(ctx, dead)
			continue
		}
		return err
	}
	return nil
}

// candidates returns the ring members that are not yet authorities, in
// ascending canonical order. The deterministic order means any two
// peers with the same view pick the same successor.
func (e *Engine) candidates(authorities []location.Location) []location.Location {
	seen := make(map[string]struct{}, len(authorities))
	for _, a := range authorities {
		seen[a.String()] = struct{}{}
	}
	var out []location.Location
	for _, n := range e.ring.Nodes() {
		if _, ok := seen[n]; ok {
			continue
		}
		loc, err := location.Parse(n)
		if err != nil {
			continue
		}
		out = append(out, loc)
	}
	return out
}

func (e *Engine) allNodes() []location.Location {
	var locs []location.Location
	for _, n := range e.ring.Nodes() {
		loc, err := location.Parse(n)
		if err != nil {
			continue
		}
		locs = append(locs, loc)
	}
	return locs
}
