package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	diagrpc "partshub/internal/modules/diagplugin/adapter/out/rpc"
	"partshub/internal/modules/diagplugin/domain"
	diagout "partshub/internal/modules/diagplugin/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() diagout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{
		Name:    meta.Name,
		Version: meta.Version,
		Systems: meta.Systems,
		Codes:   int(meta.Codes),
	}, nil
}

func (h *GRPCHost) Decode(ctx context.Context, manifest domain.Manifest, code, vehicle string) (domain.DecodeResult, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.DecodeResult{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Decode(callCtx, &diagrpc.DecodeRequest{Code: code, Vehicle: vehicle})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.DecodeResult{}, fmt.Errorf("%w: code %s", domain.ErrPluginTimeout, code)
		}
		return domain.DecodeResult{}, fmt.Errorf("decode: %w", err)
	}
	return domain.DecodeResult{
		Code:               response.Code,
		Summary:            response.Summary,
		Description:        response.Description,
		PossibleCauses:     response.PossibleCauses,
		RecommendedActions: response.RecommendedActions,
		Severity:           response.Severity,
	}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest, startTimeout time.Duration) (diagrpc.DiagPluginClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  diagrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          diagrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start plugin client: %w", err)
	}
	raw, err := rpcClient.Dispense(diagrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense plugin: %w", err)
	}
	typed, ok := raw.(diagrpc.DiagPluginClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("plugin rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
