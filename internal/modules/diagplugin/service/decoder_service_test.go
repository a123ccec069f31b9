package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"partshub/internal/modules/diagplugin/domain"
)

type fakeStore struct {
	manifests []domain.Manifest
	err       error
}

func (f *fakeStore) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, f.err
}

type fakeHost struct {
	result    domain.DecodeResult
	err       error
	lifecycle error
	decoded   []string
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return f.lifecycle
}

func (f *fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{}, nil
}

func (f *fakeHost) Decode(_ context.Context, m domain.Manifest, code, _ string) (domain.DecodeResult, error) {
	f.decoded = append(f.decoded, m.Name+":"+code)
	return f.result, f.err
}

func writePluginBinary(t *testing.T, name string) (path string, sum string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), name)
	payload := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	h := sha256.Sum256(payload)
	return path, hex.EncodeToString(h[:])
}

func validManifest(t *testing.T) domain.Manifest {
	t.Helper()
	binary, sum := writePluginBinary(t, "obdref")
	return domain.Manifest{
		Name:    "obdref",
		Version: "1.0.0",
		Binary:  binary,
		SHA256:  sum,
		Enabled: true,
		Systems: []string{"P"},
	}
}

func TestDecodeRoutesToCoveringPlugin(t *testing.T) {
	host := &fakeHost{result: domain.DecodeResult{
		Code:     "P0301",
		Summary:  "Cylinder 1 misfire detected",
		Severity: "high",
	}}
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{validManifest(t)}}, host)

	out, err := svc.Decode(context.Background(), "P0301", "Toyota Camry")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Plugin != "obdref" {
		t.Errorf("plugin = %q, want obdref", out.Plugin)
	}
	if out.Summary != "Cylinder 1 misfire detected" {
		t.Errorf("summary = %q", out.Summary)
	}
	if len(host.decoded) != 1 || host.decoded[0] != "obdref:P0301" {
		t.Errorf("decoded calls = %v", host.decoded)
	}
}

func TestDecodeNoDecoderForSystem(t *testing.T) {
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{validManifest(t)}}, &fakeHost{})

	_, err := svc.Decode(context.Background(), "B1234", "")
	if !errors.Is(err, domain.ErrNoDecoder) {
		t.Fatalf("err = %v, want ErrNoDecoder", err)
	}
}

func TestDecodeSkipsDisabledPlugin(t *testing.T) {
	manifest := validManifest(t)
	manifest.Enabled = false
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{manifest}}, &fakeHost{})

	_, err := svc.Decode(context.Background(), "P0420", "")
	if !errors.Is(err, domain.ErrNoDecoder) {
		t.Fatalf("err = %v, want ErrNoDecoder", err)
	}
}

func TestDecodeChecksumMismatch(t *testing.T) {
	manifest := validManifest(t)
	manifest.SHA256 = "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
	host := &fakeHost{}
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{manifest}}, host)

	_, err := svc.Decode(context.Background(), "P0301", "")
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("err = %v, want ErrChecksumMismatch", err)
	}
	if len(host.decoded) != 0 {
		t.Errorf("plugin must not run on checksum mismatch, calls = %v", host.decoded)
	}
}

func TestDecodeDuplicateNamesRejected(t *testing.T) {
	first := validManifest(t)
	second := validManifest(t)
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{first, second}}, &fakeHost{})

	_, err := svc.Decode(context.Background(), "P0301", "")
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestDoctorReportsMissingBinary(t *testing.T) {
	manifest := validManifest(t)
	manifest.Binary = filepath.Join(t.TempDir(), "missing")
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{manifest}}, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("Doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].BinaryReachable {
		t.Error("binary must be reported unreachable")
	}
	if results[0].Error == "" {
		t.Error("expected error message")
	}
}

func TestDoctorHealthyPlugin(t *testing.T) {
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{validManifest(t)}}, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("Doctor: %v", err)
	}
	r := results[0]
	if !r.BinaryReachable || !r.ChecksumValid || !r.LifecycleOK || r.Error != "" {
		t.Errorf("unexpected doctor result: %+v", r)
	}
}

func TestListReportsSystems(t *testing.T) {
	svc := NewDecoderService(&fakeStore{manifests: []domain.Manifest{validManifest(t)}}, &fakeHost{})

	infos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "obdref" || len(infos[0].Systems) != 1 {
		t.Errorf("infos = %+v", infos)
	}
}
