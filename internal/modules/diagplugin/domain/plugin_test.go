package domain

import (
	"strings"
	"testing"
)

func validManifest() Manifest {
	return Manifest{
		Name:    "obdref",
		Version: "1.0.0",
		Binary:  "/opt/partshub/plugins/obdref",
		SHA256:  strings.Repeat("ab", 32),
		Enabled: true,
		Systems: []string{"P"},
	}
}

func TestManifestValidate(t *testing.T) {
	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	broken := []func(*Manifest){
		func(m *Manifest) { m.Name = "" },
		func(m *Manifest) { m.Version = "" },
		func(m *Manifest) { m.Binary = "" },
		func(m *Manifest) { m.SHA256 = "XYZ" },
		func(m *Manifest) { m.SHA256 = "abcd" },
		func(m *Manifest) { m.Systems = nil },
		func(m *Manifest) { m.Systems = []string{"Z"} },
		func(m *Manifest) { m.Systems = []string{"P", "P"} },
	}
	for i, mutate := range broken {
		m := validManifest()
		mutate(&m)
		if err := m.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, m)
		}
	}
}

func TestManifestCovers(t *testing.T) {
	m := validManifest()
	if !m.Covers("P0301") {
		t.Fatal("P code must be covered")
	}
	if m.Covers("U0100") {
		t.Fatal("U code must not be covered")
	}
	if m.Covers("") {
		t.Fatal("empty code is never covered")
	}
}

func TestDecodeResultValidate(t *testing.T) {
	ok := DecodeResult{Code: "P0301", Summary: "Cylinder 1 misfire"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}
	if err := (DecodeResult{Code: "P0301"}).Validate(); err == nil {
		t.Fatal("missing summary must fail")
	}
}
