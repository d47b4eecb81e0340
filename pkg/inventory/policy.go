package inventory

import "gopkg.in/yaml.v3"

// InterfaceEntry is one declared interface that carries no policy
// assignment. These are the interfaces audited against live link status.
type InterfaceEntry struct {
	Name            string
	Description     string
	ExpectedEnabled bool
}

// UnpolicedInterfaces returns the entries of the document's top-level
// Interface sequence that lack a Policy key. The Policy value itself is
// ignored; presence alone excludes the interface from the audit.
// A missing or malformed Interface section yields an empty list.
func (d *Document) UnpolicedInterfaces() []InterfaceEntry {
	seq := d.topLevel("Interface")
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil
	}

	var entries []InterfaceEntry
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		if mappingValue(item, "Policy") != nil {
			continue
		}
		entries = append(entries, InterfaceEntry{
			Name:            scalarValue(mappingValue(item, "Name")),
			Description:     scalarValue(mappingValue(item, "Interface Description")),
			ExpectedEnabled: normalizeBool(mappingValue(item, "Enable Interface")),
		})
	}
	return entries
}
