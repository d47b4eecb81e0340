// Package status parses "show interface status" CLI output into a map of
// interface name to canonical link status.
package status

import (
	"regexp"
	"strings"
)

// Canonical status vocabulary.
const (
	Connected   = "connected"
	NotConnect  = "notconnect"
	Disabled    = "disabled"
	ErrDisabled = "err-disabled"
	Suspended   = "suspended"
	Unknown     = "unknown"

	// NotFound marks an expected interface missing from the parsed output.
	// It never appears in Parse results; reconciliation uses it for lookups
	// that miss.
	NotFound = "not found"
)

// interfaceToken matches the physical (Eth1/1, Eth1/1/1) and management
// (mgmt0) interface tokens that open a status line. All other lines are
// headers or noise.
var interfaceToken = regexp.MustCompile(`(?i)^(eth\d+(?:/\d+){1,2}|mgmt\d+)\b`)

// statusKeywords maps token-exact status words to canonical values. "not" is
// the truncated column form of notconnect.
var statusKeywords = map[string]string{
	"connected":    Connected,
	"notconnect":   NotConnect,
	"not":          NotConnect,
	"disabled":     Disabled,
	"err-disabled": ErrDisabled,
	"suspended":    Suspended,
}

// strategy resolves a status from one interface line. It returns "" when it
// cannot resolve one, letting the next strategy try.
type strategy struct {
	name string
	fn   func(line string) string
}

// strategies is the fixed precedence order. Token-exact matches are trusted
// over whole-line substring matches, and substring matches over raw column
// slicing: description columns can contain status-like words, so the blunter
// strategies only run when the precise ones find nothing.
var strategies = []strategy{
	{"token-scan", tokenScan},
	{"keyword-search", keywordSearch},
	{"column-slice", columnSlice},
}

// Parse extracts an interface → status map from raw multi-line CLI output.
// Lines not starting with an interface token are ignored. When an interface
// name repeats, the later line wins.
func Parse(output string) map[string]string {
	statuses := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		s := strings.TrimLeft(line, " \t")
		m := interfaceToken.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		name := m[1]

		resolved := Unknown
		for _, strat := range strategies {
			if got := strat.fn(s); got != "" {
				resolved = got
				break
			}
		}
		statuses[name] = resolved
	}
	return statuses
}

// tokenScan skips the interface name token and takes the first remaining
// whitespace-delimited token that is a known status word.
func tokenScan(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return ""
	}
	for _, t := range tokens[1:] {
		if st, ok := statusKeywords[strings.ToLower(t)]; ok {
			return st
		}
	}
	return ""
}

// keywordPatterns are whole-line substring patterns in priority order.
// err-disabled must precede disabled, and both precede connected, because
// the longer words contain the shorter ones.
var keywordPatterns = []struct {
	re     *regexp.Regexp
	status string
}{
	{regexp.MustCompile(`\berr-?disabled\b`), ErrDisabled},
	{regexp.MustCompile(`\bdisabled\b`), Disabled},
	{regexp.MustCompile(`\bnot\s*connect\b|\bnotconnect\b`), NotConnect},
	{regexp.MustCompile(`\bsuspended\b`), Suspended},
	{regexp.MustCompile(`\bconnected\b`), Connected},
}

func keywordSearch(line string) string {
	lower := strings.ToLower(line)
	for _, p := range keywordPatterns {
		if p.re.MatchString(lower) {
			return p.status
		}
	}
	return ""
}

// columnSplit separates column-aligned output on runs of two or more spaces.
var columnSplit = regexp.MustCompile(`\s{2,}`)

// columnSlice takes the third column of column-aligned output, falling back
// to the third whitespace token. The result is kept verbatim (lower-cased)
// even when it is not a recognized keyword.
func columnSlice(line string) string {
	parts := columnSplit.Split(line, -1)
	if len(parts) >= 3 {
		return strings.ToLower(strings.TrimSpace(parts[2]))
	}
	fields := strings.Fields(line)
	if len(fields) >= 3 {
		return strings.ToLower(fields[2])
	}
	return ""
}
