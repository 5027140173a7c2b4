package silvair

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/models/config"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Network diagnostic opcodes. The command is carried in the first parameter
// byte.
const (
	NetworkDiagnostic      opcode.Opcode = 0xFC3601
	NetworkDiagnosticSetup opcode.Opcode = 0xFD3601
)

// DiagnosticCommand is a network diagnostic server command.
type DiagnosticCommand uint8

const (
	DiagnosticSubscriptionGet      DiagnosticCommand = 0x00
	DiagnosticSubscriptionSet      DiagnosticCommand = 0x01
	DiagnosticSubscriptionSetUnack DiagnosticCommand = 0x02
	DiagnosticSubscriptionStatus   DiagnosticCommand = 0x03
	DiagnosticRadioStatGet         DiagnosticCommand = 0x04
	DiagnosticRadioStatSet         DiagnosticCommand = 0x05
	DiagnosticRadioStatStatus      DiagnosticCommand = 0x06
)

var diagnosticCommandNames = []string{
	"SUBSCRIPTION_GET",
	"SUBSCRIPTION_SET",
	"SUBSCRIPTION_SET_UNACKNOWLEDGED",
	"SUBSCRIPTION_STATUS",
	"RADIO_STAT_GET",
	"RADIO_STAT_SET",
	"RADIO_STAT_STATUS",
}

func (c DiagnosticCommand) String() string { return enumName(diagnosticCommandNames, int(c)) }

// DiagnosticSetupCommand is a network diagnostic setup server command.
type DiagnosticSetupCommand uint8

const (
	DiagnosticPublicationGet    DiagnosticSetupCommand = 0x00
	DiagnosticPublicationSet    DiagnosticSetupCommand = 0x01
	DiagnosticPublicationStatus DiagnosticSetupCommand = 0x02
)

func (c DiagnosticSetupCommand) String() string {
	return enumName([]string{"PUBLICATION_GET", "PUBLICATION_SET", "PUBLICATION_STATUS"}, int(c))
}

var (
	diagnosticCommand = schema.Enum(
		DiagnosticSubscriptionGet, DiagnosticSubscriptionSet, DiagnosticSubscriptionSetUnack,
		DiagnosticSubscriptionStatus, DiagnosticRadioStatGet, DiagnosticRadioStatSet, DiagnosticRadioStatStatus,
	)
	diagnosticSetupCommand = schema.Enum(DiagnosticPublicationGet, DiagnosticPublicationSet, DiagnosticPublicationStatus)

	hops = schema.U8.Check(schema.Max(0x7F))

	// The period keeps the raw resolution and step count of the
	// transition time byte.
	diagnosticPeriod = schema.Pack(1,
		schema.Bit("resolution", 2),
		schema.Bit("steps", 6),
	)

	diagnosticPublication = schema.Optional(
		[]schema.Field{
			schema.F("destination", config.UnicastUnassignedGroupAddress),
			schema.F("count", schema.U16),
			schema.F("period", diagnosticPeriod),
			schema.F("ttl", config.TTL),
			schema.F("net_key_index", schema.U16.Check(schema.Max(0xFFF))),
		},
		schema.F("features", schema.U16.Check(schema.Max(0x3))),
	)

	diagnosticSubscriptionSet = schema.NewStruct(
		schema.F("destination", config.UnicastUnassignedGroupAddress),
		schema.F("period", schema.U16),
	)

	registryRecord = schema.NewStruct(
		schema.F("source", config.UnicastUnassignedAddress),
		schema.F("count", schema.U16),
		schema.F("min_hops", hops),
		schema.F("max_hops", hops),
	)

	diagnosticSubscriptionStatus = schema.NewStruct(
		schema.F("destination", config.UnicastUnassignedGroupAddress),
		schema.F("period", schema.U16),
		schema.F("max_record_count", schema.U8),
		schema.F("record", schema.Greedy(registryRecord)),
	)

	diagnostic = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(diagnosticCommand)),
		schema.Embed(schema.On("subopcode",
			schema.When(DiagnosticSubscriptionSet, diagnosticSubscriptionSet),
			schema.When(DiagnosticSubscriptionSetUnack, diagnosticSubscriptionSet),
			schema.When(DiagnosticSubscriptionStatus, diagnosticSubscriptionStatus),
		).Default(access.Empty).
			Via(diagnosticCommand).
			Labeled(func(k int64) string { return DiagnosticCommand(k).String() })),
	)

	diagnosticSetup = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(diagnosticSetupCommand)),
		schema.Embed(schema.On("subopcode",
			schema.When(DiagnosticPublicationSet, diagnosticPublication),
			schema.When(DiagnosticPublicationStatus, diagnosticPublication),
		).Default(access.Empty).
			Via(diagnosticSetupCommand).
			Labeled(func(k int64) string { return DiagnosticSetupCommand(k).String() })),
	)
)

// NetworkDiagnosticFamily returns the network diagnostic server and setup
// server messages.
func NetworkDiagnosticFamily() access.Family {
	return access.Family{
		Name: "silvair_network_diagnostic",
		Messages: []access.Definition{
			access.Def(NetworkDiagnostic, "SILVAIR_NDS", diagnostic),
			access.Def(NetworkDiagnosticSetup, "SILVAIR_NDS_SETUP", diagnosticSetup),
		},
	}
}
