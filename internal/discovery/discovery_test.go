package discovery

import (
	"context"
	"testing"
	"time"

	"diststore/internal/gossip"
	"diststore/internal/location"
)

// fakeProber answers ping on a fixed set of ports and can start
// answering a port after a number of attempts.
type fakeProber struct {
	alive      map[uint16]string // port -> service type
	aliveAfter map[uint16]int    // port -> remaining failures
	pings      int
}

func (p *fakeProber) Ping(ctx context.Context, dest location.Location) error {
	p.pings++
	if left, ok := p.aliveAfter[dest.Port]; ok {
		if left > 0 {
			p.aliveAfter[dest.Port] = left - 1
			return &gossip.NodeNotFoundError{Location: dest}
		}
		return nil
	}
	if _, ok := p.alive[dest.Port]; ok {
		return nil
	}
	return &gossip.NodeNotFoundError{Location: dest}
}

func (p *fakeProber) ServiceType(ctx context.Context, dest location.Location) (string, error) {
	if service, ok := p.alive[dest.Port]; ok {
		return service, nil
	}
	return "", &gossip.NodeNotFoundError{Location: dest}
}

func start(port uint16) location.Location {
	return location.Location{Address: "localhost", Port: port}
}

func TestFindMatchingService(t *testing.T) {
	p := &fakeProber{alive: map[uint16]string{
		9900: "Locator",
		9902: "diststore.Store",
	}}

	got, ok := FindMatchingService(context.Background(), p, start(9900), "diststore.Store", 10)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Port != 9902 {
		t.Errorf("matched port %d, want 9902 (first matching service, not first live port)", got.Port)
	}
}

func TestFindMatchingService_NoMatch(t *testing.T) {
	p := &fakeProber{alive: map[uint16]string{9900: "Locator"}}
	if _, ok := FindMatchingService(context.Background(), p, start(9900), "diststore.Store", 5); ok {
		t.Error("matched a service that is not there")
	}
}

func TestPingUntilFound(t *testing.T) {
	p := &fakeProber{alive: map[uint16]string{9903: "diststore.Store"}}
	got, err := PingUntilFound(context.Background(), p, start(9900), 10)
	if err != nil {
		t.Fatalf("PingUntilFound: %v", err)
	}
	if got.Port != 9903 {
		t.Errorf("found port %d, want 9903", got.Port)
	}
}

func TestPingUntilFound_Exhausted(t *testing.T) {
	p := &fakeProber{}
	_, err := PingUntilFound(context.Background(), p, start(9900), 4)
	if err == nil {
		t.Fatal("expected the scan to drain")
	}
	if _, ok := gossip.IsNodeNotFound(err); !ok {
		t.Errorf("drained scan returned %v, want NodeNotFoundError", err)
	}
	if p.pings != 4 {
		t.Errorf("probed %d ports, want 4", p.pings)
	}
}

func TestPingUntilNotFound(t *testing.T) {
	// 9900 and 9901 are taken; the free port is 9902.
	p := &fakeProber{alive: map[uint16]string{9900: "x", 9901: "x"}}
	got, err := PingUntilNotFound(context.Background(), p, start(9900), 10)
	if err != nil {
		t.Fatalf("PingUntilNotFound: %v", err)
	}
	if got.Port != 9902 {
		t.Errorf("free port %d, want 9902", got.Port)
	}
}

func TestPingUntilNotFound_Exhausted(t *testing.T) {
	p := &fakeProber{alive: map[uint16]string{
		9900: "x", 9901: "x", 9902: "x",
	}}
	if _, err := PingUntilNotFound(context.Background(), p, start(9900), 3); err == nil {
		t.Fatal("expected the scan to drain with every port taken")
	}
}

func TestPingUntilReturn_BacksOffUntilUp(t *testing.T) {
	p := &fakeProber{aliveAfter: map[uint16]int{9900: 3}}
	begin := time.Now()
	if err := PingUntilReturn(context.Background(), p, start(9900), DefaultAttempts); err != nil {
		t.Fatalf("PingUntilReturn: %v", err)
	}
	// Three failures cost 10 + 20 + 40 ms of back-off.
	if elapsed := time.Since(begin); elapsed < 70*time.Millisecond {
		t.Errorf("returned after %v, want at least 70ms of back-off", elapsed)
	}
	if p.pings != 4 {
		t.Errorf("pinged %d times, want 4", p.pings)
	}
}

func TestPingUntilReturn_AttemptCap(t *testing.T) {
	p := &fakeProber{}
	err := PingUntilReturn(context.Background(), p, start(9900), 3)
	if err == nil {
		t.Fatal("expected failure once attempts drain")
	}
	if dead, ok := gossip.IsNodeNotFound(err); !ok || dead.Port != 9900 {
		t.Errorf("got %v, want NodeNotFoundError for port 9900", err)
	}
	if p.pings != 3 {
		t.Errorf("pinged %d times, want 3", p.pings)
	}
}

func TestPingUntilReturn_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &fakeProber{}
	err := PingUntilReturn(ctx, p, start(9900), DefaultAttempts)
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
