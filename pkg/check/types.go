// Package check reconciles declared interface state against live link status
// and drives the per-device audit loop.
package check

import "time"

// InterfaceResult is the verdict for one audited interface.
type InterfaceResult struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Status          string `json:"status"`
	ExpectedEnabled bool   `json:"expected_enabled"`
	Matches         bool   `json:"matches"`
}

// DeviceResult is the outcome of checking one device.
type DeviceResult struct {
	Hostname     string            `json:"hostname"`
	SourceFile   string            `json:"source_file"`
	Connected    bool              `json:"connected"`
	Interfaces   []InterfaceResult `json:"interfaces,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

// Report aggregates one full run across the fabric.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Duration  time.Duration  `json:"duration"`
	Devices   []DeviceResult `json:"devices"`
	Passed    bool           `json:"passed"`
}

// Unreachable counts devices that could not be checked.
func (r *Report) Unreachable() int {
	n := 0
	for _, d := range r.Devices {
		if !d.Connected {
			n++
		}
	}
	return n
}

// Mismatched counts interfaces whose live status contradicts the documents.
func (r *Report) Mismatched() int {
	n := 0
	for _, d := range r.Devices {
		for _, i := range d.Interfaces {
			if !i.Matches {
				n++
			}
		}
	}
	return n
}
