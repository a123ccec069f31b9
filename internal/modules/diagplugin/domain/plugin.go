package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrPluginDisabled   = errors.New("plugin is disabled")
	ErrChecksumMismatch = errors.New("plugin checksum mismatch")
	ErrCodeUnknown      = errors.New("trouble code not in plugin database")
	ErrPluginTimeout    = errors.New("plugin timeout")
	ErrNoDecoder        = errors.New("no decoder plugin available")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed decoder binary.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Binary  string `yaml:"binary"`
	SHA256  string `yaml:"sha256"`
	Enabled bool   `yaml:"enabled"`
	// Systems lists the code prefixes the decoder covers: P, B, C, U.
	Systems []string `yaml:"systems"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	if len(m.Systems) == 0 {
		return fmt.Errorf("plugin systems are required")
	}
	seen := map[string]struct{}{}
	for _, system := range m.Systems {
		switch system {
		case "P", "B", "C", "U":
		default:
			return fmt.Errorf("unknown system: %s", system)
		}
		if _, ok := seen[system]; ok {
			return fmt.Errorf("duplicate system: %s", system)
		}
		seen[system] = struct{}{}
	}
	return nil
}

func (m Manifest) Covers(code string) bool {
	if code == "" {
		return false
	}
	for _, system := range m.Systems {
		if system == code[:1] {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name    string
	Version string
	Systems []string
	// Codes is how many trouble codes the decoder knows.
	Codes int
}

// DecodeResult is a decoder plugin's answer for one trouble code.
type DecodeResult struct {
	Code               string
	Summary            string
	Description        string
	PossibleCauses     []string
	RecommendedActions []string
	Severity           string
}

func (r DecodeResult) Validate() error {
	if r.Code == "" || r.Summary == "" {
		return fmt.Errorf("decode result needs code and summary")
	}
	return nil
}
