package config

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "empty is valid",
			cfg:  Config{},
		},
		{
			name: "explicit peer",
			cfg:  Config{Peer: "127.0.0.1:9900"},
		},
		{
			name:    "peer without port",
			cfg:     Config{Peer: "127.0.0.1"},
			wantErr: true,
		},
		{
			name:    "peer with bad port",
			cfg:     Config{Peer: "127.0.0.1:banana"},
			wantErr: true,
		},
		{
			name:    "peer with whitespace",
			cfg:     Config{Peer: " 127.0.0.1:9900"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_PeerLocation(t *testing.T) {
	cfg := Config{Peer: "127.0.0.1:9900"}
	loc, ok, err := cfg.PeerLocation()
	if err != nil || !ok {
		t.Fatalf("PeerLocation() = (%v, %v, %v)", loc, ok, err)
	}
	if loc.Address != "127.0.0.1" || loc.Port != 9900 {
		t.Errorf("PeerLocation() = %v", loc)
	}

	cfg = Config{}
	if _, ok, err := cfg.PeerLocation(); ok || err != nil {
		t.Errorf("empty peer resolved to (%v, %v)", ok, err)
	}
}

func TestConfig_AdvertisedAddr(t *testing.T) {
	cfg := Config{Addr: "10.1.2.3"}
	if got := cfg.AdvertisedAddr(); got != "10.1.2.3" {
		t.Errorf("AdvertisedAddr() = %q, want explicit address", got)
	}

	cfg = Config{}
	if got := cfg.AdvertisedAddr(); got == "" {
		t.Error("AdvertisedAddr() fell through to empty")
	}
}
