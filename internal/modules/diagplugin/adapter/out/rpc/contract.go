package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "partshub"
	serviceName       = "partshub.plugin.v1.DiagPlugin"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodDecode      = "/" + serviceName + "/Decode"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "PARTSHUB_PLUGIN",
	MagicCookieValue: "partshub",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Systems []string `json:"systems"`
	Codes   int32    `json:"codes"`
}

type DecodeRequest struct {
	Code    string `json:"code"`
	Vehicle string `json:"vehicle"`
}

type DecodeResponse struct {
	Code               string   `json:"code"`
	Summary            string   `json:"summary"`
	Description        string   `json:"description"`
	PossibleCauses     []string `json:"possible_causes"`
	RecommendedActions []string `json:"recommended_actions"`
	Severity           string   `json:"severity"`
}

type DiagPluginServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Decode(ctx context.Context, in *DecodeRequest) (*DecodeResponse, error)
}

type DiagPluginClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Decode(ctx context.Context, in *DecodeRequest) (*DecodeResponse, error)
}

type diagPluginClient struct {
	conn *grpc.ClientConn
}

func NewDiagPluginClient(conn *grpc.ClientConn) DiagPluginClient {
	return &diagPluginClient{conn: conn}
}

func (c *diagPluginClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *diagPluginClient) Decode(ctx context.Context, in *DecodeRequest) (*DecodeResponse, error) {
	out := &DecodeResponse{}
	if err := c.conn.Invoke(ctx, methodDecode, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterDiagPluginServer(server grpc.ServiceRegistrar, impl DiagPluginServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*DiagPluginServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Decode",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &DecodeRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Decode(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDecode}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*DecodeRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Decode(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/diagplugin-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl DiagPluginServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterDiagPluginServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewDiagPluginClient(conn), nil
}

func PluginMap(impl DiagPluginServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
