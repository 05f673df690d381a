package node

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	diststorepb "diststore/internal/gen/api"
	"diststore/internal/gossip"
	"diststore/internal/location"
	"diststore/internal/ring"
	"diststore/internal/storage"
)

// ErrAlreadyInUse is returned by Start when the intended self-location
// already answers ping: another node owns the port.
var ErrAlreadyInUse = errors.New("address already in use")

// State tracks the node lifecycle.
type State int32

const (
	StateNew State = iota
	StateJoining
	StateServing
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateJoining:
		return "joining"
	case StateServing:
		return "serving"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Node is one process-wide participant: a location on the ring, the
// local table, and the serving loop. It joins the ring exactly once
// and hands its data off on graceful shutdown. Nothing persists.
type Node struct {
	self    location.Location
	peer    *location.Location
	ring    *ring.Ring
	store   storage.Store
	engine  *gossip.Engine
	client  *Client
	handler *StoreServer
	server  *grpc.Server
	state   atomic.Int32
}

// New creates a node at self. peer is the bootstrap hint; nil means
// this node initiates a fresh network.
func New(self location.Location, peer *location.Location) *Node {
	r := ring.New()
	store := storage.NewInMemoryStore()
	client := NewClient()
	engine := gossip.New(self, r, client)

	return &Node{
		self:    self,
		peer:    peer,
		ring:    r,
		store:   store,
		engine:  engine,
		client:  client,
		handler: NewStoreServer(self, r, engine, client, store),
	}
}

// Self returns this node's location.
func (n *Node) Self() location.Location { return n.self }

// Ring returns the membership view.
func (n *Node) Ring() *ring.Ring { return n.ring }

// Store returns the local table.
func (n *Node) Store() storage.Store { return n.store }

// State returns the current lifecycle state.
func (n *Node) State() State { return State(n.state.Load()) }

// Start binds the listener, begins serving and joins the network. The
// listener comes up before the join so the contacted peer's readiness
// ping answers while the join is still in flight.
func (n *Node) Start(ctx context.Context) error {
	if err := n.client.Ping(ctx, n.self); err == nil {
		return fmt.Errorf("%w: %s answered ping", ErrAlreadyInUse, n.self)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", n.self.Port))
	if err != nil {
		return fmt.Errorf("listen on %s: %w", n.self, err)
	}

	n.server = grpc.NewServer()
	diststorepb.RegisterBaseServer(n.server, n.handler)
	diststorepb.RegisterLocatorServer(n.server, n.handler)
	diststorepb.RegisterStoreServer(n.server, n.handler)
	reflection.Register(n.server)

	go func() {
		if err := n.server.Serve(lis); err != nil {
			log.Printf("[%s] serve: %v", n.self, err)
		}
	}()

	n.state.Store(int32(StateJoining))
	if err := n.localJoin(ctx); err != nil {
		n.server.Stop()
		return err
	}
	n.state.Store(int32(StateServing))
	log.Printf("[%s] serving", n.self)
	return nil
}

// localJoin inserts self into the ring and, given a peer, downloads
// its roster and announces self through it.
func (n *Node) localJoin(ctx context.Context) error {
	n.ring.Add(n.self.String())
	if n.peer == nil {
		log.Printf("[%s] initiating the network", n.self)
		return nil
	}

	roster, err := n.client.GetAll(ctx, *n.peer)
	if err != nil {
		return fmt.Errorf("roster from %s: %w", n.peer, err)
	}
	n.ring.Extend(location.Strings(roster))
	if err := n.client.Join(ctx, *n.peer, n.self); err != nil {
		return fmt.Errorf("join via %s: %w", n.peer, err)
	}
	log.Printf("[%s] joining the network via %s", n.self, n.peer)
	return nil
}

// Shutdown drains the node and stops serving: self leaves the ring
// first, then every non-empty value is handed to its new owner, best
// effort.
func (n *Node) Shutdown(ctx context.Context) {
	n.state.Store(int32(StateDraining))
	n.cleanup(ctx)
	if n.server != nil {
		n.server.GracefulStop()
	}
	n.state.Store(int32(StateStopped))
	log.Printf("[%s] done", n.self)
}

// Kill stops serving without cleanup, as a crash would.
func (n *Node) Kill() {
	if n.server != nil {
		n.server.Stop()
	}
	n.state.Store(int32(StateStopped))
}

// cleanup removes self from the local ring and hands the table over.
// Each distinct new owner is told about the departure at most once,
// confirmed with a ping, and only then receives its items. When there
// is nothing to hand off, one live peer still learns of the departure
// so the network does.
func (n *Node) cleanup(ctx context.Context) {
	n.ring.Remove(n.self.String())
	if n.ring.Len() == 0 {
		return
	}

	informed := make(map[string]struct{})
	for key, value := range n.store.Items() {
		if value == "" {
			continue
		}
		owner, ok := n.ring.Lookup(key)
		if !ok {
			break
		}
		dest, err := location.Parse(owner)
		if err != nil {
			continue
		}
		if _, done := informed[owner]; !done {
			if err := n.client.Remove(ctx, dest, n.self, []location.Location{n.self}); err != nil {
				log.Printf("[%s] not found: %s", n.self, dest)
				continue
			}
			informed[owner] = struct{}{}
		}
		if err := n.client.Ping(ctx, dest); err != nil {
			log.Printf("[%s] not found: %s", n.self, dest)
			continue
		}
		if err := n.client.Put(ctx, dest, key, value); err != nil {
			log.Printf("[%s] hand-off %s to %s: %v", n.self, key, dest, err)
		}
	}

	if len(informed) == 0 {
		for _, peer := range n.ring.Nodes() {
			dest, err := location.Parse(peer)
			if err != nil {
				continue
			}
			if err := n.client.Remove(ctx, dest, n.self, []location.Location{n.self}); err != nil {
				if dead, isDead := gossip.IsNodeNotFound(err); isDead {
					n.ring.Remove(dead.String())
				}
				continue
			}
			break
		}
	}
}
