package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root string, parts []string, content string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScan_FindsNestedDevices(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, []string{"ny", "leaf1.yaml"}, "hostname: leaf1-ny\nip address: 10.0.0.1\n")
	writeFile(t, root, []string{"ny", "racks", "leaf2.yml"}, "hostname: leaf2-ny\nip address: 10.0.0.2\n")

	devices, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() = %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2: %+v", len(devices), devices)
	}
}

func TestScan_SkipsTopLevelDocuments(t *testing.T) {
	root := t.TempDir()
	// Same identity content, but directly under the root: wrong tier.
	writeFile(t, root, []string{"fabric.yaml"}, "hostname: fabric\nip address: 10.0.0.9\n")
	writeFile(t, root, []string{"ny", "leaf1.yaml"}, "hostname: leaf1-ny\nip address: 10.0.0.1\n")

	devices, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() = %v", err)
	}
	if len(devices) != 1 || devices[0].Hostname != "leaf1-ny" {
		t.Errorf("got %+v, want only the nested device", devices)
	}
}

func TestScan_Deduplicates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, []string{"ny", "leaf1.yaml"}, "hostname: leaf1-ny\nip address: 10.0.0.1\n")
	writeFile(t, root, []string{"nj", "leaf1-again.yaml"}, "hostname: leaf1-ny\nip address: 10.0.0.1\n")

	devices, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() = %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("got %d devices, want 1 after dedup: %+v", len(devices), devices)
	}
	// Lexical walk order: nj sorts before ny, so the nj document is kept.
	if devices[0].SourceFile != "leaf1-again.yaml" {
		t.Errorf("kept %q, want first-discovered document", devices[0].SourceFile)
	}
}

func TestScan_SameHostnameDifferentAddressKept(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, []string{"ny", "a.yaml"}, "hostname: leaf1\nip address: 10.0.0.1\n")
	writeFile(t, root, []string{"ny", "b.yaml"}, "hostname: leaf1\nip address: 10.0.0.2\n")

	devices, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() = %v", err)
	}
	if len(devices) != 2 {
		t.Errorf("got %d devices, want 2 (identity is hostname plus address)", len(devices))
	}
}

func TestScan_IgnoresIncompleteAndForeignFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, []string{"ny", "no-addr.yaml"}, "hostname: leaf1\n")
	writeFile(t, root, []string{"ny", "no-host.yaml"}, "ip address: 10.0.0.1\n")
	writeFile(t, root, []string{"ny", "readme.txt"}, "hostname: leaf1\nip address: 10.0.0.1\n")

	devices, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() = %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("got %+v, want none", devices)
	}
}

func TestScan_UnreadableDocumentSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, []string{"ny", "bad.yaml"}, "a: [1, 2")
	writeFile(t, root, []string{"ny", "good.yaml"}, "hostname: leaf1\nip address: 10.0.0.1\n")

	devices, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() = %v, want scan to continue past bad document", err)
	}
	if len(devices) != 1 {
		t.Errorf("got %d devices, want 1", len(devices))
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Scan(missing root) = nil error, want error")
	}
}

func TestDeviceKey(t *testing.T) {
	d := Device{Hostname: "leaf1-ny", Address: "10.0.0.1"}
	if got := d.Key(); got != "leaf1-ny_10.0.0.1" {
		t.Errorf("Key() = %q", got)
	}
}
