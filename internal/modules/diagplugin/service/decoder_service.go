package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"partshub/internal/modules/diagplugin/domain"
	"partshub/internal/modules/diagplugin/dto"
	diagout "partshub/internal/modules/diagplugin/port/out"
)

// DecoderService manages installed OBD decoder plugins and routes a
// trouble code to the first enabled decoder covering its system.
type DecoderService struct {
	store diagout.ManifestStore
	host  diagout.Host
}

func NewDecoderService(store diagout.ManifestStore, host diagout.Host) *DecoderService {
	return &DecoderService{store: store, host: host}
}

func (s *DecoderService) List(ctx context.Context) ([]dto.PluginInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PluginInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.PluginInfo{
			Name:    m.Name,
			Version: m.Version,
			Enabled: m.Enabled,
			Binary:  m.Binary,
			Systems: m.Systems,
		})
	}
	return out, nil
}

func (s *DecoderService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

// Decode tries every enabled decoder covering the code's system, in
// manifest order, until one answers.
func (s *DecoderService) Decode(ctx context.Context, code, vehicle string) (dto.DecodeOutput, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return dto.DecodeOutput{}, err
	}
	var lastErr error
	tried := false
	for _, manifest := range manifests {
		if !manifest.Enabled || !manifest.Covers(code) {
			continue
		}
		tried = true
		if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			lastErr = err
			continue
		}
		result, err := s.host.Decode(ctx, manifest, code, vehicle)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return dto.DecodeOutput{}, fmt.Errorf("%w: %s", domain.ErrPluginTimeout, manifest.Name)
			}
			lastErr = err
			continue
		}
		if err := result.Validate(); err != nil {
			lastErr = err
			continue
		}
		return dto.DecodeOutput{
			Plugin:             manifest.Name,
			Code:               result.Code,
			Summary:            result.Summary,
			Description:        result.Description,
			PossibleCauses:     result.PossibleCauses,
			RecommendedActions: result.RecommendedActions,
			Severity:           result.Severity,
		}, nil
	}
	if !tried {
		return dto.DecodeOutput{}, fmt.Errorf("%w: code %s", domain.ErrNoDecoder, code)
	}
	if lastErr != nil {
		return dto.DecodeOutput{}, lastErr
	}
	return dto.DecodeOutput{}, fmt.Errorf("%w: code %s", domain.ErrNoDecoder, code)
}

func (s *DecoderService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate plugin name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
