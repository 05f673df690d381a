package location

import (
	"testing"

	diststorepb "diststore/internal/gen/api"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Location
		wantErr bool
	}{
		{
			name:  "plain",
			input: "127.0.0.1:9900",
			want:  Location{Address: "127.0.0.1", Port: 9900},
		},
		{
			name:  "hostname",
			input: "localhost:9901",
			want:  Location{Address: "localhost", Port: 9901},
		},
		{
			name:  "port zero",
			input: "example.com:0",
			want:  Location{Address: "example.com", Port: 0},
		},
		{
			name:  "max port",
			input: "10.0.0.1:65535",
			want:  Location{Address: "10.0.0.1", Port: 65535},
		},
		{
			name:  "splits on last colon",
			input: "::1:9900",
			want:  Location{Address: "::1", Port: 9900},
		},
		{
			name:    "missing port",
			input:   "127.0.0.1",
			wantErr: true,
		},
		{
			name:    "port overflow",
			input:   "127.0.0.1:70000",
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			input:   "127.0.0.1:http",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{"127.0.0.1:9900", "localhost:0", "host.example:65535"}
	for _, s := range inputs {
		loc, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if loc.String() != s {
			t.Errorf("round trip %q -> %q", s, loc.String())
		}
	}
}

func TestIsZero(t *testing.T) {
	if !(Location{}).IsZero() {
		t.Error("zero location should be the empty sentinel")
	}
	if (Location{Address: "127.0.0.1", Port: 9900}).IsZero() {
		t.Error("populated location reported as sentinel")
	}
	if (Location{Port: 1}).IsZero() {
		t.Error("port-only location reported as sentinel")
	}
}

func TestProtoConversion(t *testing.T) {
	loc := Location{Address: "127.0.0.1", Port: 9900}
	if got := FromProto(loc.ToProto()); got != loc {
		t.Errorf("proto round trip = %v, want %v", got, loc)
	}
	if got := FromProto(nil); !got.IsZero() {
		t.Errorf("FromProto(nil) = %v, want sentinel", got)
	}
}

func TestProtoListConversion(t *testing.T) {
	locs := []Location{
		{Address: "127.0.0.1", Port: 9900},
		{Address: "127.0.0.1", Port: 9901},
	}
	got := FromProtoList(ToProtoList(locs))
	if len(got) != len(locs) {
		t.Fatalf("list round trip length = %d, want %d", len(got), len(locs))
	}
	for i := range locs {
		if got[i] != locs[i] {
			t.Errorf("list round trip [%d] = %v, want %v", i, got[i], locs[i])
		}
	}

	var empty []*diststorepb.Location
	if out := FromProtoList(empty); len(out) != 0 {
		t.Errorf("FromProtoList(nil) = %v, want empty", out)
	}
}

func TestStrings(t *testing.T) {
	locs := []Location{
		{Address: "127.0.0.1", Port: 9900},
		{Address: "localhost", Port: 9901},
	}
	got := Strings(locs)
	want := []string{"127.0.0.1:9900", "localhost:9901"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
