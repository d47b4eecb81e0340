package check

import (
	"testing"

	"github.com/fabricops/fabcheck/pkg/inventory"
	"github.com/fabricops/fabcheck/pkg/status"
)

func TestShortName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ethernet1/1", "Eth1/1"},
		{"Ethernet1/1/4", "Eth1/1/4"},
		{"mgmt0", "mgmt0"},
		{"Eth1/1", "Eth1/1"},
	}
	for _, tt := range tests {
		if got := ShortName(tt.in); got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReconcile_MatchLaw(t *testing.T) {
	// matches must equal (status == connected) == expectedEnabled for every
	// status in the vocabulary, including the unresolved ones.
	statuses := []string{
		status.Connected, status.NotConnect, status.Disabled,
		status.ErrDisabled, status.Suspended, status.Unknown, "sfpabsent",
	}
	for _, st := range statuses {
		for _, expected := range []bool{true, false} {
			entries := []inventory.InterfaceEntry{
				{Name: "Ethernet1/1", ExpectedEnabled: expected},
			}
			got := Reconcile(entries, map[string]string{"Eth1/1": st})
			want := (st == status.Connected) == expected
			if got[0].Matches != want {
				t.Errorf("Reconcile(status=%q, expected=%v).Matches = %v, want %v",
					st, expected, got[0].Matches, want)
			}
		}
	}
}

func TestReconcile_MissingInterfaceIsNotFound(t *testing.T) {
	entries := []inventory.InterfaceEntry{
		{Name: "Ethernet2/1", ExpectedEnabled: true},
	}
	got := Reconcile(entries, map[string]string{"Eth1/1": status.Connected})

	if got[0].Status != status.NotFound {
		t.Errorf("Status = %q, want %q", got[0].Status, status.NotFound)
	}
	if got[0].Matches {
		t.Error("missing interface with expectedEnabled=true must not match")
	}
}

func TestReconcile_MissingInterfaceMatchesWhenExpectedDisabled(t *testing.T) {
	entries := []inventory.InterfaceEntry{
		{Name: "Ethernet2/1", ExpectedEnabled: false},
	}
	got := Reconcile(entries, map[string]string{})

	if !got[0].Matches {
		t.Error("missing interface with expectedEnabled=false must match")
	}
}

func TestReconcile_PreservesOrderAndFields(t *testing.T) {
	entries := []inventory.InterfaceEntry{
		{Name: "Ethernet1/2", Description: "to spine2", ExpectedEnabled: true},
		{Name: "Ethernet1/1", Description: "to spine1", ExpectedEnabled: true},
	}
	got := Reconcile(entries, map[string]string{
		"Eth1/1": status.Connected,
		"Eth1/2": status.Connected,
	})

	if got[0].Name != "Ethernet1/2" || got[1].Name != "Ethernet1/1" {
		t.Errorf("result order does not follow declaration order: %+v", got)
	}
	if got[0].Description != "to spine2" {
		t.Errorf("Description = %q, want %q", got[0].Description, "to spine2")
	}
}
