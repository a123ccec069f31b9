package out

import (
	"context"

	diagpluginin "partshub/internal/modules/diagplugin/port/in"
	"partshub/internal/modules/garage/domain"
)

// PluginDecoder resolves trouble codes through locally installed decoder
// plugins, used when the backend diagnosis endpoint is unreachable.
type PluginDecoder struct {
	plugins diagpluginin.Usecase
}

func NewPluginDecoder(plugins diagpluginin.Usecase) *PluginDecoder {
	return &PluginDecoder{plugins: plugins}
}

func (d *PluginDecoder) Decode(ctx context.Context, code, vehicle string) (domain.Diagnosis, error) {
	out, err := d.plugins.Decode(ctx, code, vehicle)
	if err != nil {
		return domain.Diagnosis{}, err
	}
	return domain.Diagnosis{
		Code:               out.Code,
		Vehicle:            vehicle,
		Summary:            out.Summary,
		Description:        out.Description,
		PossibleCauses:     out.PossibleCauses,
		RecommendedActions: out.RecommendedActions,
		Severity:           domain.Severity(out.Severity),
	}, nil
}
