package inventory

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fabricops/fabcheck/pkg/util"
)

// Device is the discovered identity of one network device.
type Device struct {
	SourceFile string // document base name
	SourcePath string // full document path
	Address    string
	Hostname   string
}

// Key is the identity used for deduplication across documents.
func (d Device) Key() string {
	return d.Hostname + "_" + d.Address
}

// Scan walks the document tree under root and returns every device that has
// both an address and a hostname, deduplicated on Hostname_Address.
//
// Documents directly under root are skipped: device-level documents live at
// least one directory down (root/<group>/<device>.yaml); files at the top
// belong to a different configuration tier. Unreadable documents are logged
// and skipped, never fatal.
func Scan(root string) ([]Device, error) {
	var devices []Device
	seen := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			util.WithFile(path).Warnf("Skipping unreadable entry: %v", err)
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if len(strings.Split(rel, string(filepath.Separator))) < 2 {
			util.WithFile(path).Debugf("Skipping top-level document")
			return nil
		}

		doc, loadErr := LoadDocument(path)
		if loadErr != nil {
			util.Warnf("Scan: %v", loadErr)
			return nil
		}

		address, hostname := doc.Identity()
		if address == "" || hostname == "" {
			return nil
		}

		dev := Device{
			SourceFile: filepath.Base(path),
			SourcePath: path,
			Address:    address,
			Hostname:   hostname,
		}
		if seen[dev.Key()] {
			util.WithFile(path).Debugf("Duplicate device %s, keeping first occurrence", dev.Key())
			return nil
		}
		seen[dev.Key()] = true
		devices = append(devices, dev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return devices, nil
}
