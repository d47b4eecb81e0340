package check

import (
	"strings"

	"github.com/fabricops/fabcheck/pkg/inventory"
	"github.com/fabricops/fabcheck/pkg/status"
)

// ShortName translates a declared long-form interface name to the switch's
// short-form convention (Ethernet1/1 → Eth1/1), which is how interfaces
// appear in status output.
func ShortName(name string) string {
	return strings.ReplaceAll(name, "Ethernet", "Eth")
}

// Reconcile compares each expected interface against the parsed status map.
// An interface missing from the map gets the "not found" sentinel. The match
// law: any status other than connected counts as not connected, so
// matches == (status == connected) == expectedEnabled.
func Reconcile(entries []inventory.InterfaceEntry, statuses map[string]string) []InterfaceResult {
	results := make([]InterfaceResult, 0, len(entries))
	for _, e := range entries {
		st, ok := statuses[ShortName(e.Name)]
		if !ok {
			st = status.NotFound
		}
		results = append(results, InterfaceResult{
			Name:            e.Name,
			Description:     e.Description,
			Status:          st,
			ExpectedEnabled: e.ExpectedEnabled,
			Matches:         (st == status.Connected) == e.ExpectedEnabled,
		})
	}
	return results
}
