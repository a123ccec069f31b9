package out

import (
	"context"

	"partshub/internal/modules/diagplugin/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Decode(ctx context.Context, manifest domain.Manifest, code, vehicle string) (domain.DecodeResult, error)
}
