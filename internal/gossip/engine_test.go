package gossip

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"diststore/internal/location"
	"diststore/internal/ring"
)

// network wires engines together in memory: every forwarded call runs
// the destination engine's handler synchronously, the way the RPC
// layer would, and keeps a log for order assertions.
type network struct {
	engines map[string]*Engine
	rings   map[string]*ring.Ring
	dead    map[string]bool
	calls   []string
	observe func(from, dest location.Location)
}

type netCaller struct {
	net  *network
	from location.Location
}

func (c *netCaller) Add(ctx context.Context, dest, loc location.Location, authorities []location.Location) error {
	if c.net.observe != nil {
		c.net.observe(c.from, dest)
	}
	if c.net.dead[dest.String()] {
		return &NodeNotFoundError{Location: dest}
	}
	c.net.calls = append(c.net.calls, fmt.Sprintf("add %s->%s", c.from, dest))
	return c.net.engines[dest.String()].Add(ctx, loc, append([]location.Location(nil), authorities...))
}

func (c *netCaller) Remove(ctx context.Context, dest, loc location.Location, authorities []location.Location) error {
	if c.net.observe != nil {
		c.net.observe(c.from, dest)
	}
	if c.net.dead[dest.String()] {
		return &NodeNotFoundError{Location: dest}
	}
	c.net.calls = append(c.net.calls, fmt.Sprintf("remove %s->%s", c.from, dest))
	return c.net.engines[dest.String()].Remove(ctx, loc, append([]location.Location(nil), authorities...))
}

// newNetwork builds peers that all know each other already.
func newNetwork(peers ...location.Location) *network {
	net := &network{
		engines: make(map[string]*Engine),
		rings:   make(map[string]*ring.Ring),
		dead:    make(map[string]bool),
	}
	all := location.Strings(peers)
	for _, p := range peers {
		r := ring.New(all...)
		net.rings[p.String()] = r
		net.engines[p.String()] = New(p, r, &netCaller{net: net, from: p})
	}
	return net
}

func loc(port uint16) location.Location {
	return location.Location{Address: "127.0.0.1", Port: port}
}

func TestEngine_AddChainReachesEveryPeerOnce(t *testing.T) {
	n1, n2, n3, n4 := loc(9901), loc(9902), loc(9903), loc(9904)
	net := newNetwork(n1, n2, n3, n4)
	joiner := loc(9910)

	if err := net.engines[n1.String()].Add(context.Background(), joiner, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// The chain walks the sorted candidates one hop at a time.
	want := []string{
		"add 127.0.0.1:9901->127.0.0.1:9902",
		"add 127.0.0.1:9902->127.0.0.1:9903",
		"add 127.0.0.1:9903->127.0.0.1:9904",
	}
	if len(net.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", net.calls, want)
	}
	for i := range want {
		if net.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, net.calls[i], want[i])
		}
	}

	for peer, r := range net.rings {
		if !r.Contains(joiner.String()) {
			t.Errorf("peer %s never observed the add", peer)
		}
	}
}

func TestEngine_AddInsertsAfterForwarding(t *testing.T) {
	n1, n2 := loc(9901), loc(9902)
	net := newNetwork(n1, n2)
	joiner := loc(9910)

	sawDuringForward := false
	net.observe = func(from, dest location.Location) {
		if from == n1 {
			sawDuringForward = net.rings[n1.String()].Contains(joiner.String())
		}
	}

	if err := net.engines[n1.String()].Add(context.Background(), joiner, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sawDuringForward {
		t.Error("originator inserted the joiner before forwarding the chain")
	}
	if !net.rings[n1.String()].Contains(joiner.String()) {
		t.Error("originator never inserted the joiner")
	}
}

func TestEngine_AddSkipsDeadCandidateAndCascades(t *testing.T) {
	n1, n2, n3, n4 := loc(9901), loc(9902), loc(9903), loc(9904)
	net := newNetwork(n1, n2, n3, n4)
	net.dead[n2.String()] = true
	joiner := loc(9910)

	if err := net.engines[n1.String()].Add(context.Background(), joiner, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Every live peer observed the joiner and evicted the dead hop.
	for _, p := range []location.Location{n1, n3, n4} {
		r := net.rings[p.String()]
		if !r.Contains(joiner.String()) {
			t.Errorf("live peer %s never observed the add", p)
		}
		if r.Contains(n2.String()) {
			t.Errorf("live peer %s still lists the dead peer", p)
		}
	}

	// The cascade uses saturated authorities: no remove is forwarded.
	for _, call := range net.calls {
		if call[:6] == "remove" {
			t.Errorf("cascade propagated over the network: %s", call)
		}
	}
}

func TestEngine_RemoveChainReachesEveryPeer(t *testing.T) {
	n1, n2, n3 := loc(9901), loc(9902), loc(9903)
	leaving := loc(9904)
	net := newNetwork(n1, n2, n3, leaving)

	// The departing node announces itself to one peer only.
	if err := net.engines[n1.String()].Remove(context.Background(), leaving, []location.Location{leaving}); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	for _, p := range []location.Location{n1, n2, n3} {
		if net.rings[p.String()].Contains(leaving.String()) {
			t.Errorf("peer %s still lists the departed node", p)
		}
	}

	want := []string{
		"remove 127.0.0.1:9901->127.0.0.1:9902",
		"remove 127.0.0.1:9902->127.0.0.1:9903",
	}
	if len(net.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", net.calls, want)
	}
	for i := range want {
		if net.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, net.calls[i], want[i])
		}
	}
}

func TestEngine_RemoveUnknownPeerStillGossips(t *testing.T) {
	n1, n2 := loc(9901), loc(9902)
	net := newNetwork(n1, n2)
	stranger := loc(9950)

	if err := net.engines[n1.String()].Remove(context.Background(), stranger, []location.Location{stranger}); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// Locally a no-op, but the event still travels.
	if net.rings[n1.String()].Len() != 2 {
		t.Errorf("removing an unknown peer disturbed membership: %v", net.rings[n1.String()].Nodes())
	}
	if len(net.calls) != 1 || net.calls[0] != "remove 127.0.0.1:9901->127.0.0.1:9902" {
		t.Errorf("calls = %v, want a single forwarded remove", net.calls)
	}
}

func TestEngine_EmptyCandidateSetTerminatesSilently(t *testing.T) {
	n1 := loc(9901)
	net := newNetwork(n1)
	joiner := loc(9910)

	if err := net.engines[n1.String()].Add(context.Background(), joiner, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(net.calls) != 0 {
		t.Errorf("lone node forwarded anyway: %v", net.calls)
	}
	if !net.rings[n1.String()].Contains(joiner.String()) {
		t.Error("lone node did not insert the joiner")
	}
}

// errCaller fails every call with a protocol-level error.
type errCaller struct{}

func (errCaller) Add(ctx context.Context, dest, loc location.Location, authorities []location.Location) error {
	return errors.New("bad frame")
}

func (errCaller) Remove(ctx context.Context, dest, loc location.Location, authorities []location.Location) error {
	return errors.New("bad frame")
}

func TestEngine_ProtocolErrorAbortsAdd(t *testing.T) {
	n1, n2 := loc(9901), loc(9902)
	r := ring.New(n1.String(), n2.String())
	e := New(n1, r, errCaller{})
	joiner := loc(9910)

	err := e.Add(context.Background(), joiner, nil)
	if err == nil {
		t.Fatal("expected the protocol error to surface")
	}
	if _, isDead := IsNodeNotFound(err); isDead {
		t.Fatal("protocol error misclassified as a dead peer")
	}
	if r.Contains(joiner.String()) {
		t.Error("joiner inserted despite the aborted chain")
	}
}

func TestIsNodeNotFound(t *testing.T) {
	target := loc(9901)
	err := fmt.Errorf("forwarding: %w", &NodeNotFoundError{Location: target})
	got, ok := IsNodeNotFound(err)
	if !ok || got != target {
		t.Errorf("IsNodeNotFound = (%v, %v), want (%v, true)", got, ok, target)
	}
	if _, ok := IsNodeNotFound(errors.New("other")); ok {
		t.Error("unrelated error classified as node-not-found")
	}
}
