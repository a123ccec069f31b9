package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	diagout "partshub/internal/modules/diagplugin/adapter/out"
)

func writeManifest(t *testing.T, base, name, body string) {
	t.Helper()
	dir := filepath.Join(base, "plugins")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir plugins: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestFileManifestStoreLoadMissingDirReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := diagout.NewFileManifestStore(t.TempDir())
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected empty manifests, got %d", len(manifests))
	}
}

func TestFileManifestStoreResolvesRelativeBinary(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	writeManifest(t, base, "obdref.yaml", `name: obdref
version: 1.0.0
binary: plugins/obdref/obdref-plugin
sha256: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
enabled: true
systems: [P]
`)
	store := diagout.NewFileManifestStore(base)
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("expected one manifest, got %d", len(manifests))
	}
	if !filepath.IsAbs(manifests[0].Binary) {
		t.Fatalf("expected absolute binary path, got %s", manifests[0].Binary)
	}
}

func TestFileManifestStoreLoadsInFilenameOrder(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	writeManifest(t, base, "b-second.yaml", `name: second
version: 1.0.0
binary: /opt/second
sha256: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb
enabled: true
systems: [B]
`)
	writeManifest(t, base, "a-first.yml", `name: first
version: 1.0.0
binary: /opt/first
sha256: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
enabled: true
systems: [P]
`)
	store := diagout.NewFileManifestStore(base)
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 2 {
		t.Fatalf("expected two manifests, got %d", len(manifests))
	}
	if manifests[0].Name != "first" || manifests[1].Name != "second" {
		t.Fatalf("unexpected order: %s, %s", manifests[0].Name, manifests[1].Name)
	}
}

func TestFileManifestStoreRejectsUnknownField(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	writeManifest(t, base, "obdref.yaml", `name: obdref
version: 1.0.0
binary: /tmp/obdref-plugin
sha256: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
enabled: true
systems: [P]
unknown_field: true
`)
	store := diagout.NewFileManifestStore(base)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestFileManifestStoreNormalizesChecksumCase(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	writeManifest(t, base, "obdref.yaml", `name: obdref
version: 1.0.0
binary: /tmp/obdref-plugin
sha256: AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA
enabled: true
systems: [P]
`)
	store := diagout.NewFileManifestStore(base)
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	want := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	if manifests[0].SHA256 != want {
		t.Fatalf("checksum not normalized: %s", manifests[0].SHA256)
	}
}
