package node

import (
	"context"
	"log"

	diststorepb "diststore/internal/gen/api"
	"diststore/internal/discovery"
	"diststore/internal/gossip"
	"diststore/internal/location"
	"diststore/internal/ring"
)

// Leaf service names announced by ServiceType and matched during
// autodiscovery.
const (
	ServiceLocator = "Locator"
	ServiceStore   = "diststore.Store"
)

// LocatorServer implements the Base and Locator services: it keeps the
// ring current through the gossip engine and answers roster queries.
// Handlers never return errors across the RPC boundary; internal
// failures become void returns plus a log line.
type LocatorServer struct {
	diststorepb.UnimplementedBaseServer
	diststorepb.UnimplementedLocatorServer

	self    location.Location
	service string
	ring    *ring.Ring
	engine  *gossip.Engine
	client  *Client

	// afterAdd runs once a gossiped add has been applied locally. The
	// store layer hooks its hand-off drain here; when unset, Join
	// falls back to a bare readiness ping.
	afterAdd func(ctx context.Context, loc location.Location) error
	// debugExtra contributes extra state to Debug output.
	debugExtra func() string
}

// NewLocatorServer creates a locator handler for self.
func NewLocatorServer(self location.Location, r *ring.Ring, engine *gossip.Engine, client *Client) *LocatorServer {
	return &LocatorServer{
		self:    self,
		service: ServiceLocator,
		ring:    r,
		engine:  engine,
		client:  client,
	}
}

// Ping answers liveness probes. Kept quiet: probing is constant
// background noise.
func (s *LocatorServer) Ping(ctx context.Context, req *diststorepb.PingRequest) (*diststorepb.PingResponse, error) {
	return &diststorepb.PingResponse{}, nil
}

// ServiceType announces the leaf service name.
func (s *LocatorServer) ServiceType(ctx context.Context, req *diststorepb.ServiceTypeRequest) (*diststorepb.ServiceTypeResponse, error) {
	return &diststorepb.ServiceTypeResponse{Name: s.service}, nil
}

// Join admits a new peer: the add chain starts here with self as the
// only authority, and the handler returns once the joiner is reachable.
func (s *LocatorServer) Join(ctx context.Context, req *diststorepb.JoinRequest) (*diststorepb.JoinResponse, error) {
	loc := location.FromProto(req.GetLocation())
	if err := s.addPeer(ctx, loc, []location.Location{s.self}); err != nil {
		log.Printf("[%s] join %s: %v", s.self, loc, err)
	}
	return &diststorepb.JoinResponse{}, nil
}

// Add applies a gossiped add event.
func (s *LocatorServer) Add(ctx context.Context, req *diststorepb.AddRequest) (*diststorepb.AddResponse, error) {
	loc := location.FromProto(req.GetLocation())
	if err := s.addPeer(ctx, loc, location.FromProtoList(req.GetAuthorities())); err != nil {
		log.Printf("[%s] add %s: %v", s.self, loc, err)
	}
	return &diststorepb.AddResponse{}, nil
}

// addPeer runs the add chain and the post-insert hook. Without a store
// hook the readiness wait still runs so Join only returns once the
// joiner's server accepts connections.
func (s *LocatorServer) addPeer(ctx context.Context, loc location.Location, authorities []location.Location) error {
	if err := s.engine.Add(ctx, loc, authorities); err != nil {
		return err
	}
	if s.afterAdd != nil {
		return s.afterAdd(ctx, loc)
	}
	return discovery.PingUntilReturn(ctx, s.client, loc, discovery.DefaultAttempts)
}

// Remove applies a gossiped remove event. Removing a peer this node
// never knew about is a silent no-op apart from the chain.
func (s *LocatorServer) Remove(ctx context.Context, req *diststorepb.RemoveRequest) (*diststorepb.RemoveResponse, error) {
	loc := location.FromProto(req.GetLocation())
	if err := s.engine.Remove(ctx, loc, location.FromProtoList(req.GetAuthorities())); err != nil {
		log.Printf("[%s] remove %s: %v", s.self, loc, err)
	}
	return &diststorepb.RemoveResponse{}, nil
}

// GetAll returns the membership roster.
func (s *LocatorServer) GetAll(ctx context.Context, req *diststorepb.GetAllRequest) (*diststorepb.GetAllResponse, error) {
	nodes := s.ring.Nodes()
	locs := make([]*diststorepb.Location, 0, len(nodes))
	for _, n := range nodes {
		loc, err := location.Parse(n)
		if err != nil {
			continue
		}
		locs = append(locs, loc.ToProto())
	}
	return &diststorepb.GetAllResponse{Locations: locs}, nil
}

// GetNode returns the owner of key, or the empty sentinel location
// when the ring is empty.
func (s *LocatorServer) GetNode(ctx context.Context, req *diststorepb.GetNodeRequest) (*diststorepb.GetNodeResponse, error) {
	owner, ok := s.ring.Lookup(req.GetKey())
	if !ok {
		return &diststorepb.GetNodeResponse{Location: location.Location{}.ToProto()}, nil
	}
	loc, err := location.Parse(owner)
	if err != nil {
		return &diststorepb.GetNodeResponse{Location: location.Location{}.ToProto()}, nil
	}
	return &diststorepb.GetNodeResponse{Location: loc.ToProto()}, nil
}

// Debug logs the local view.
func (s *LocatorServer) Debug(ctx context.Context, req *diststorepb.DebugRequest) (*diststorepb.DebugResponse, error) {
	extra := ""
	if s.debugExtra != nil {
		extra = s.debugExtra()
	}
	log.Printf("[%s] ring: %v%s", s.self, s.ring.Nodes(), extra)
	return &diststorepb.DebugResponse{}, nil
}
