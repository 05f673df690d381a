package node

import (
	"context"
	"fmt"
	"log"

	diststorepb "diststore/internal/gen/api"
	"diststore/internal/discovery"
	"diststore/internal/gossip"
	"diststore/internal/location"
	"diststore/internal/ring"
	"diststore/internal/storage"
)

// StoreServer layers the key-value service over the locator handler.
// Requests are routed through the ring on every call: the owner is
// never cached, so routing self-corrects as membership changes.
type StoreServer struct {
	diststorepb.UnimplementedStoreServer
	*LocatorServer

	store storage.Store
}

// NewStoreServer creates the full store handler for self.
func NewStoreServer(self location.Location, r *ring.Ring, engine *gossip.Engine, client *Client, store storage.Store) *StoreServer {
	s := &StoreServer{
		LocatorServer: NewLocatorServer(self, r, engine, client),
		store:         store,
	}
	s.service = ServiceStore
	s.afterAdd = s.drainTo
	s.debugExtra = func() string { return fmt.Sprintf(", store: %d keys", store.Len()) }
	return s
}

// Get serves a key locally when this node owns it, and forwards to the
// owner otherwise. An unreachable owner is evicted and the read comes
// back empty; absence is not an error.
func (s *StoreServer) Get(ctx context.Context, req *diststorepb.GetRequest) (*diststorepb.GetResponse, error) {
	key := req.GetKey()
	owner, ok := s.ring.Lookup(key)
	if !ok || owner == s.self.String() {
		value, found := s.store.Get(key)
		if found {
			log.Printf("[%s] found %s", s.self, key)
		}
		return &diststorepb.GetResponse{Value: value}, nil
	}

	dest, err := location.Parse(owner)
	if err != nil {
		log.Printf("[%s] get %s: bad owner %q: %v", s.self, key, owner, err)
		return &diststorepb.GetResponse{}, nil
	}
	value, err := s.client.Get(ctx, dest, key)
	if err != nil {
		if dead, isDead := gossip.IsNodeNotFound(err); isDead {
			s.engine.CascadeRemove(ctx, dead)
			return &diststorepb.GetResponse{}, nil
		}
		return nil, err
	}
	return &diststorepb.GetResponse{Value: value}, nil
}

// Put stores a key locally when this node owns it, and forwards to the
// owner otherwise. A write whose owner is unreachable is dropped after
// the eviction; the caller is not stalled.
func (s *StoreServer) Put(ctx context.Context, req *diststorepb.PutRequest) (*diststorepb.PutResponse, error) {
	key := req.GetKey()
	owner, ok := s.ring.Lookup(key)
	if !ok || owner == s.self.String() {
		log.Printf("[%s] received %s", s.self, key)
		s.store.Put(key, req.GetValue())
		return &diststorepb.PutResponse{}, nil
	}

	dest, err := location.Parse(owner)
	if err != nil {
		log.Printf("[%s] put %s: bad owner %q: %v", s.self, key, owner, err)
		return &diststorepb.PutResponse{}, nil
	}
	if err := s.client.Put(ctx, dest, key, req.GetValue()); err != nil {
		if dead, isDead := gossip.IsNodeNotFound(err); isDead {
			s.engine.CascadeRemove(ctx, dead)
			return &diststorepb.PutResponse{}, nil
		}
		return nil, err
	}
	return &diststorepb.PutResponse{}, nil
}

// drainTo hands over every local key the ring now assigns to the
// joiner. The order matters: the joiner is already in the ring, it has
// confirmed it is serving, and only then do the items move.
func (s *StoreServer) drainTo(ctx context.Context, joiner location.Location) error {
	if joiner == s.self {
		return nil
	}
	if err := discovery.PingUntilReturn(ctx, s.client, joiner, discovery.DefaultAttempts); err != nil {
		return err
	}

	target := joiner.String()
	for key, value := range s.store.Items() {
		owner, ok := s.ring.Lookup(key)
		if !ok || owner != target {
			continue
		}
		if err := s.client.Put(ctx, joiner, key, value); err != nil {
			return err
		}
		s.store.Delete(key)
		log.Printf("[%s] dropped %s", s.self, key)
	}
	return nil
}
