package main

import (
	"context"
	"fmt"
	"strings"

	diagrpc "partshub/internal/modules/diagplugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// entry is one powertrain code in the built-in reference table.
type entry struct {
	summary     string
	description string
	causes      []string
	actions     []string
	severity    string
}

var codes = map[string]entry{
	"P0171": {
		summary:     "System too lean (bank 1)",
		description: "The engine control unit detected more oxygen in the exhaust than expected, meaning the air-fuel mixture on bank 1 is running lean.",
		causes:      []string{"Vacuum leak", "Weak fuel pump or clogged fuel filter", "Dirty mass airflow sensor", "Faulty oxygen sensor"},
		actions:     []string{"Inspect intake hoses and gaskets for leaks", "Clean the mass airflow sensor", "Check fuel pressure"},
		severity:    "medium",
	},
	"P0300": {
		summary:     "Random or multiple cylinder misfire detected",
		description: "Misfires were registered on more than one cylinder with no single cylinder dominating.",
		causes:      []string{"Worn spark plugs or coils", "Low fuel pressure", "Vacuum leak", "Incorrect ignition timing"},
		actions:     []string{"Replace spark plugs if due", "Check ignition coils", "Verify fuel pressure"},
		severity:    "high",
	},
	"P0301": {
		summary:     "Cylinder 1 misfire detected",
		description: "The crankshaft position sensor registered repeated misfires on cylinder 1.",
		causes:      []string{"Failed spark plug or ignition coil on cylinder 1", "Clogged or leaking injector", "Low compression"},
		actions:     []string{"Swap the cylinder 1 coil with a neighbour and re-read codes", "Inspect the spark plug", "Run a compression test if the misfire persists"},
		severity:    "high",
	},
	"P0420": {
		summary:     "Catalyst system efficiency below threshold (bank 1)",
		description: "The downstream oxygen sensor shows the catalytic converter on bank 1 is no longer storing oxygen effectively.",
		causes:      []string{"Aged or damaged catalytic converter", "Exhaust leak before the rear sensor", "Failing downstream oxygen sensor"},
		actions:     []string{"Check for exhaust leaks", "Test both oxygen sensors", "Replace the converter if sensors are healthy"},
		severity:    "medium",
	},
	"P0442": {
		summary:     "Evaporative emission system leak detected (small leak)",
		description: "The EVAP system failed its pressure-decay self-test with a small leak signature.",
		causes:      []string{"Loose or worn fuel cap", "Cracked EVAP hose", "Faulty purge or vent valve"},
		actions:     []string{"Tighten or replace the fuel cap", "Smoke-test the EVAP lines"},
		severity:    "low",
	},
	"P0500": {
		summary:     "Vehicle speed sensor malfunction",
		description: "The vehicle speed signal is missing or implausible.",
		causes:      []string{"Failed speed sensor", "Damaged sensor wiring", "Instrument cluster fault"},
		actions:     []string{"Inspect the sensor connector and wiring", "Test the sensor output"},
		severity:    "medium",
	},
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *diagrpc.Empty) (*diagrpc.Metadata, error) {
	return &diagrpc.Metadata{
		Name:    "obdref",
		Version: "1.0.0",
		Systems: []string{"P"},
		Codes:   int32(len(codes)),
	}, nil
}

func (s *server) Decode(_ context.Context, in *diagrpc.DecodeRequest) (*diagrpc.DecodeResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	e, ok := codes[code]
	if !ok {
		return nil, fmt.Errorf("unknown code: %s", code)
	}
	return &diagrpc.DecodeResponse{
		Code:               code,
		Summary:            e.summary,
		Description:        e.description,
		PossibleCauses:     e.causes,
		RecommendedActions: e.actions,
		Severity:           e.severity,
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: diagrpc.HandshakeConfig,
		Plugins:         diagrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
