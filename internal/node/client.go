package node

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	diststorepb "diststore/internal/gen/api"
	"diststore/internal/gossip"
	"diststore/internal/location"
)

// Client performs one-shot typed calls: each call dials the peer,
// issues a single RPC and closes the connection. Connection-level
// failure is normalized to gossip.NodeNotFoundError; protocol-level
// errors from the remote bubble up unchanged.
type Client struct{}

// NewClient creates a client.
func NewClient() *Client {
	return &Client{}
}

func (c *Client) dial(dest location.Location) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(dest.String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, &gossip.NodeNotFoundError{Location: dest}
	}
	return conn, nil
}

// classify maps transport-level call failures onto NodeNotFoundError.
// Calls are fail-fast: a refused or unreachable peer surfaces as
// Unavailable on the first attempt instead of waiting for readiness.
func classify(dest location.Location, err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return &gossip.NodeNotFoundError{Location: dest}
	}
	return err
}

// Ping checks liveness of dest.
func (c *Client) Ping(ctx context.Context, dest location.Location) error {
	conn, err := c.dial(dest)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = diststorepb.NewBaseClient(conn).Ping(ctx, &diststorepb.PingRequest{})
	return classify(dest, err)
}

// ServiceType returns the leaf service name dest announces.
func (c *Client) ServiceType(ctx context.Context, dest location.Location) (string, error) {
	conn, err := c.dial(dest)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	resp, err := diststorepb.NewBaseClient(conn).ServiceType(ctx, &diststorepb.ServiceTypeRequest{})
	if err != nil {
		return "", classify(dest, err)
	}
	return resp.GetName(), nil
}

// Join asks dest to admit loc into the network.
func (c *Client) Join(ctx context.Context, dest, loc location.Location) error {
	conn, err := c.dial(dest)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = diststorepb.NewLocatorClient(conn).Join(ctx, &diststorepb.JoinRequest{
		Location: loc.ToProto(),
	})
	return classify(dest, err)
}

// Add forwards an add event to dest.
func (c *Client) Add(ctx context.Context, dest, loc location.Location, authorities []location.Location) error {
	conn, err := c.dial(dest)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = diststorepb.NewLocatorClient(conn).Add(ctx, &diststorepb.AddRequest{
		Location:    loc.ToProto(),
		Authorities: location.ToProtoList(authorities),
	})
	return classify(dest, err)
}

// Remove forwards a remove event to dest.
func (c *Client) Remove(ctx context.Context, dest, loc location.Location, authorities []location.Location) error {
	conn, err := c.dial(dest)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = diststorepb.NewLocatorClient(conn).Remove(ctx, &diststorepb.RemoveRequest{
		Location:    loc.ToProto(),
		Authorities: location.ToProtoList(authorities),
	})
	return classify(dest, err)
}

// GetAll downloads dest's membership roster.
func (c *Client) GetAll(ctx context.Context, dest location.Location) ([]location.Location, error) {
	conn, err := c.dial(dest)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	resp, err := diststorepb.NewLocatorClient(conn).GetAll(ctx, &diststorepb.GetAllRequest{})
	if err != nil {
		return nil, classify(dest, err)
	}
	return location.FromProtoList(resp.GetLocations()), nil
}

// GetNode asks dest which node owns key.
func (c *Client) GetNode(ctx context.Context, dest location.Location, key string) (location.Location, error) {
	conn, err := c.dial(dest)
	if err != nil {
		return location.Location{}, err
	}
	defer conn.Close()

	resp, err := diststorepb.NewLocatorClient(conn).GetNode(ctx, &diststorepb.GetNodeRequest{Key: key})
	if err != nil {
		return location.Location{}, classify(dest, err)
	}
	return location.FromProto(resp.GetLocation()), nil
}

// Get fetches the value for key from dest.
func (c *Client) Get(ctx context.Context, dest location.Location, key string) (string, error) {
	conn, err := c.dial(dest)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	resp, err := diststorepb.NewStoreClient(conn).Get(ctx, &diststorepb.GetRequest{Key: key})
	if err != nil {
		return "", classify(dest, err)
	}
	return resp.GetValue(), nil
}

// Put stores a value for key at dest.
func (c *Client) Put(ctx context.Context, dest location.Location, key, value string) error {
	conn, err := c.dial(dest)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = diststorepb.NewStoreClient(conn).Put(ctx, &diststorepb.PutRequest{Key: key, Value: value})
	return classify(dest, err)
}
