// Package location defines the identity of a peer: an address and a
// port, canonically rendered as "address:port". A location is the sole
// identity of a node; there is no separate node id.
package location

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	diststorepb "diststore/internal/gen/api"
)

// Location identifies a peer. Two locations are equal iff both fields
// are equal.
type Location struct {
	Address string
	Port    uint16
}

// String returns the canonical "address:port" form.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Address, l.Port)
}

// IsZero reports whether l is the empty sentinel ("", 0) returned by
// lookups against an empty ring.
func (l Location) IsZero() bool {
	return l.Address == "" && l.Port == 0
}

// ToProto converts l to its wire representation.
func (l Location) ToProto() *diststorepb.Location {
	return &diststorepb.Location{Address: l.Address, Port: int32(l.Port)}
}

// Parse converts a canonical "address:port" string back into a
// Location. The string is split on the last colon.
func Parse(s string) (Location, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return Location{}, fmt.Errorf("location %q: missing port", s)
	}
	port, err := strconv.ParseUint(s[i+1:], 10, 16)
	if err != nil {
		return Location{}, fmt.Errorf("location %q: invalid port: %w", s, err)
	}
	return Location{Address: s[:i], Port: uint16(port)}, nil
}

// FromProto converts a wire location.
func FromProto(pb *diststorepb.Location) Location {
	if pb == nil {
		return Location{}
	}
	return Location{Address: pb.GetAddress(), Port: uint16(pb.GetPort())}
}

// FromProtoList converts a wire authority list or roster.
func FromProtoList(pbs []*diststorepb.Location) []Location {
	locs := make([]Location, 0, len(pbs))
	for _, pb := range pbs {
		locs = append(locs, FromProto(pb))
	}
	return locs
}

// ToProtoList converts locs to the wire representation.
func ToProtoList(locs []Location) []*diststorepb.Location {
	pbs := make([]*diststorepb.Location, 0, len(locs))
	for _, l := range locs {
		pbs = append(pbs, l.ToProto())
	}
	return pbs
}

// Strings returns the canonical forms of locs.
func Strings(locs []Location) []string {
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.String())
	}
	return out
}

// LocalAddress resolves the address this host advertises to peers,
// falling back to loopback when the hostname does not resolve.
func LocalAddress() string {
	host, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupHost(host)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}
