package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("sku,name\n"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("failed to set mtime on %s: %v", path, err)
	}
}

func TestFindLatestExport(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	old := filepath.Join(dir, "export_catalog_product_20240101.csv")
	fresh := filepath.Join(dir, "export_catalog_product_20250601.csv")
	unrelated := filepath.Join(dir, "inventory_report.csv")
	touch(t, old, now.Add(-48*time.Hour))
	touch(t, fresh, now)
	touch(t, unrelated, now.Add(time.Hour))

	found, err := FindLatestExport([]string{dir}, nil)
	if err != nil {
		t.Fatalf("FindLatestExport() error = %v", err)
	}
	if found != fresh {
		t.Errorf("FindLatestExport() = %q, want %q", found, fresh)
	}
}

func TestFindLatestExportAcrossDirs(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	now := time.Now()

	inA := filepath.Join(dirA, "export_catalog_product_a.csv")
	inB := filepath.Join(dirB, "export_catalog_product_b.xlsx")
	touch(t, inA, now.Add(-time.Hour))
	touch(t, inB, now)

	found, err := FindLatestExport([]string{dirA, dirB}, nil)
	if err != nil {
		t.Fatalf("FindLatestExport() error = %v", err)
	}
	if found != inB {
		t.Errorf("FindLatestExport() = %q, want %q", found, inB)
	}
}

func TestFindLatestExportTieBreaksByPath(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Now().Truncate(time.Second)

	a := filepath.Join(dir, "export_catalog_product_a.csv")
	b := filepath.Join(dir, "export_catalog_product_b.csv")
	touch(t, a, mtime)
	touch(t, b, mtime)

	found, err := FindLatestExport([]string{dir}, nil)
	if err != nil {
		t.Fatalf("FindLatestExport() error = %v", err)
	}
	if found != a {
		t.Errorf("FindLatestExport() = %q, want lexically smaller %q", found, a)
	}
}

func TestFindLatestExportNotFound(t *testing.T) {
	if _, err := FindLatestExport([]string{t.TempDir()}, nil); !errors.Is(err, ErrNoExportFound) {
		t.Errorf("FindLatestExport() error = %v, want ErrNoExportFound", err)
	}
}

func TestLoadSnapshotUnsupportedFormat(t *testing.T) {
	if _, err := LoadSnapshot("export.txt"); err == nil {
		t.Error("LoadSnapshot() on unsupported extension did not return an error")
	}
}

func TestDiscoverAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export_catalog_product_1.csv")
	content := "sku,name\nRING-SM,GOLD RING\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	foundPath, snapshot, err := DiscoverAndLoad("", []string{dir}, nil)
	if err != nil {
		t.Fatalf("DiscoverAndLoad() error = %v", err)
	}
	if foundPath != path {
		t.Errorf("path = %q, want %q", foundPath, path)
	}
	if len(snapshot.Records) != 1 {
		t.Errorf("records = %d, want 1", len(snapshot.Records))
	}

	// Явный путь имеет приоритет над поиском
	explicitPath, _, err := DiscoverAndLoad(path, []string{"/nonexistent"}, nil)
	if err != nil {
		t.Fatalf("DiscoverAndLoad(explicit) error = %v", err)
	}
	if explicitPath != path {
		t.Errorf("explicit path = %q, want %q", explicitPath, path)
	}
}
