// Package inventory discovers devices and their interface expectations from
// a tree of topology documents.
package inventory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fabricops/fabcheck/pkg/util"
)

// Document is one parsed topology document. The decoded YAML is kept as a
// node tree so key searches see keys in document order.
type Document struct {
	Path string
	root *yaml.Node
}

// LoadDocument reads and parses a topology document.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &util.DocumentError{Path: path, Err: err}
	}

	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, &util.DocumentError{Path: path, Err: err}
	}

	root := &n
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return &Document{Path: path}, nil
		}
		root = n.Content[0]
	}
	return &Document{Path: path, root: root}, nil
}

// ParseDocument parses an in-memory topology document. Used by tests and by
// callers that already hold the file contents.
func ParseDocument(path string, data []byte) (*Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, &util.DocumentError{Path: path, Err: err}
	}
	root := &n
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return &Document{Path: path}, nil
		}
		root = n.Content[0]
	}
	return &Document{Path: path, root: root}, nil
}

// addressKeys are the mapping keys (lower-cased) that carry a device address.
var addressKeys = map[string]bool{
	"ip address": true,
	"ip_address": true,
}

// Identity searches the document for the device address and hostname.
// The search recurses into nested mappings and sequences at any depth,
// matches keys case-insensitively, and keeps the first occurrence of each
// field. Either value is empty when the document does not carry it.
func (d *Document) Identity() (address, hostname string) {
	walkIdentity(d.root, &address, &hostname)
	return
}

func walkIdentity(n *yaml.Node, address, hostname *string) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			switch k := strings.ToLower(key.Value); {
			case addressKeys[k]:
				if *address == "" && val.Kind == yaml.ScalarNode {
					*address = val.Value
				}
			case k == "hostname":
				if *hostname == "" && val.Kind == yaml.ScalarNode {
					*hostname = val.Value
				}
			default:
				walkIdentity(val, address, hostname)
			}
		}
	case yaml.SequenceNode:
		for _, c := range n.Content {
			walkIdentity(c, address, hostname)
		}
	}
}

// topLevel returns the value node for an exact top-level mapping key.
func (d *Document) topLevel(key string) *yaml.Node {
	if d.root == nil || d.root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		if d.root.Content[i].Value == key {
			return d.root.Content[i+1]
		}
	}
	return nil
}

// mappingValue returns the value node for an exact key of a mapping node.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func scalarValue(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// truthyStrings is the accepted set of truthy string forms for loosely-typed
// boolean flags in topology documents.
var truthyStrings = map[string]bool{
	"true": true,
	"yes":  true,
	"1":    true,
}

// normalizeBool resolves a loosely-typed flag node to a boolean. A nil node
// (absent key) defaults to true; strings are matched case-insensitively
// against the truthy set; numbers are truthy when non-zero.
func normalizeBool(n *yaml.Node) bool {
	if n == nil {
		return true
	}
	if n.Kind != yaml.ScalarNode {
		return false
	}
	switch n.Tag {
	case "!!bool":
		// yaml.v3 keeps the source spelling (True, TRUE) in Value.
		return strings.EqualFold(n.Value, "true")
	case "!!int", "!!float":
		var f float64
		if _, err := fmt.Sscanf(n.Value, "%g", &f); err == nil {
			return f != 0
		}
		return false
	case "!!null":
		return false
	default:
		return truthyStrings[strings.ToLower(strings.TrimSpace(n.Value))]
	}
}
