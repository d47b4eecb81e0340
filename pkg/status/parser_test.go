package status

import (
	"reflect"
	"testing"
)

func TestParse_TokenScanPriority(t *testing.T) {
	// Token-exact status must win without falling through to the blunter
	// strategies.
	out := "Eth1/1   Server-Uplink   connected   1   full   1000   fiber"
	got := Parse(out)
	if got["Eth1/1"] != Connected {
		t.Errorf("status = %q, want %q", got["Eth1/1"], Connected)
	}
}

func TestParse_DescriptionDoesNotFoolTokenScan(t *testing.T) {
	// "connected-to-core" is a single token and not a status word; the real
	// status token further right must be selected.
	out := "Eth1/5   connected-to-core   notconnect   1   auto   auto   --"
	got := Parse(out)
	if got["Eth1/5"] != NotConnect {
		t.Errorf("status = %q, want %q", got["Eth1/5"], NotConnect)
	}
}

func TestParse_KeywordFallback(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		// No token-exact status word anywhere, so the whole-line search runs.
		{"Eth1/2 link is errdisabled on port", ErrDisabled},
		{"Eth1/3 port admin-disabled by operator", Disabled},
		{"Eth1/4 status: (notconnect) since boot", NotConnect},
		{"Eth1/6 vpc peer-link suspended...", Suspended},
		{"Eth1/7 neighbor fully connected.", Connected},
	}
	for _, tt := range tests {
		got := Parse(tt.line)
		name := ""
		for k := range got {
			name = k
		}
		if got[name] != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.line, got[name], tt.want)
		}
	}
}

func TestParse_ColumnSliceLastResort(t *testing.T) {
	// No known keyword at all: the third two-space column is kept verbatim,
	// lower-cased.
	out := "Eth1/10    Some Server    sfpAbsent    1    auto    auto"
	got := Parse(out)
	if got["Eth1/10"] != "sfpabsent" {
		t.Errorf("status = %q, want %q", got["Eth1/10"], "sfpabsent")
	}
}

func TestParse_ColumnSliceSingleSpaceFallback(t *testing.T) {
	// Not column-aligned: the third whitespace token is taken instead.
	out := "Eth1/11 uplink xcvrInvalid 1 auto auto"
	got := Parse(out)
	if got["Eth1/11"] != "xcvrinvalid" {
		t.Errorf("status = %q, want %q", got["Eth1/11"], "xcvrinvalid")
	}
}

func TestParse_ManagementInterface(t *testing.T) {
	out := "mgmt0  --  connected  routed  full  1000  --"
	got := Parse(out)
	if got["mgmt0"] != Connected {
		t.Errorf("status = %q, want %q", got["mgmt0"], Connected)
	}
}

func TestParse_IgnoresHeadersAndBlankLines(t *testing.T) {
	out := `
--------------------------------------------------------------------------------
Port          Name               Status    Vlan      Duplex  Speed   Type
--------------------------------------------------------------------------------
Eth1/1        spine1             connected 1         full    100G    QSFP28
Eth1/2        spine2             notconnect 1        full    100G    QSFP28

Total ports: 2
`
	got := Parse(out)
	want := map[string]string{
		"Eth1/1": Connected,
		"Eth1/2": NotConnect,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_NotNormalizedToNotconnect(t *testing.T) {
	// Wrapped output can truncate "notconnect" to a bare "not" token.
	out := "Eth1/3  downlink  not  1  auto  auto  --"
	got := Parse(out)
	if got["Eth1/3"] != NotConnect {
		t.Errorf("status = %q, want %q", got["Eth1/3"], NotConnect)
	}
}

func TestParse_ThreeLevelPort(t *testing.T) {
	out := "Eth1/1/1  breakout  connected  1  full  25G  SFP28"
	got := Parse(out)
	if got["Eth1/1/1"] != Connected {
		t.Errorf("status = %q, want %q", got["Eth1/1/1"], Connected)
	}
}

func TestParse_LaterLineOverwrites(t *testing.T) {
	out := "Eth1/1  a  notconnect  1  auto  auto\nEth1/1  a  connected  1  full  100G"
	got := Parse(out)
	if got["Eth1/1"] != Connected {
		t.Errorf("status = %q, want later line %q", got["Eth1/1"], Connected)
	}
}

func TestParse_UnresolvedLineIsUnknown(t *testing.T) {
	// Interface token with nothing after it resolves to unknown.
	out := "Eth1/9"
	got := Parse(out)
	if got["Eth1/9"] != Unknown {
		t.Errorf("status = %q, want %q", got["Eth1/9"], Unknown)
	}
}

func TestStrategyOrder(t *testing.T) {
	// The precedence table is load-bearing: token-exact before substring
	// before column slice.
	want := []string{"token-scan", "keyword-search", "column-slice"}
	if len(strategies) != len(want) {
		t.Fatalf("got %d strategies, want %d", len(strategies), len(want))
	}
	for i, s := range strategies {
		if s.name != want[i] {
			t.Errorf("strategies[%d] = %q, want %q", i, s.name, want[i])
		}
	}
}
