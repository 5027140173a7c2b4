package silvair

import (
	"strconv"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/models/config"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// GatewayConfig is the opcode of every gateway configuration message.
const GatewayConfig opcode.Opcode = 0xF03601

// GatewayCommand is a gateway configuration command.
type GatewayCommand uint8

const (
	GatewayConfigurationGet        GatewayCommand = 0x00
	GatewayConfigurationSet        GatewayCommand = 0x01
	GatewayPacketsGet              GatewayCommand = 0x02
	GatewayPacketsClear            GatewayCommand = 0x03
	GatewayMTUSizeSet              GatewayCommand = 0x04
	GatewayEthernetMACAddressSet   GatewayCommand = 0x05
	GatewayServerAddressAndPortSet GatewayCommand = 0x06
	GatewayReconnectIntervalSet    GatewayCommand = 0x07
	GatewayDNSIPAddressSet         GatewayCommand = 0x08
	GatewayIPAddressSet            GatewayCommand = 0x09
	GatewayGatewayIPAddressSet     GatewayCommand = 0x0A
	GatewayNetmaskSet              GatewayCommand = 0x0B
	GatewayConfigurationStatus     GatewayCommand = 0x0C
	GatewayPacketsStatus           GatewayCommand = 0x0D
)

var gatewayCommandNames = []string{
	"GATEWAY_CONFIGURATION_GET",
	"GATEWAY_CONFIGURATION_SET",
	"GATEWAY_PACKETS_GET",
	"GATEWAY_PACKETS_CLEAR",
	"MTU_SIZE_SET",
	"ETHERNET_MAC_ADDRESS_SET",
	"SERVER_ADDRESS_AND_PORT_NUMBER_SET",
	"RECONNECT_INTERVAL_SET",
	"DNS_IP_ADDRESS_SET",
	"IP_ADDRESS_SET",
	"GATEWAY_IP_ADDRESS_SET",
	"NETMASK_SET",
	"GATEWAY_CONFIGURATION_STATUS",
	"GATEWAY_PACKETS_STATUS",
}

func (c GatewayCommand) String() string { return enumName(gatewayCommandNames, int(c)) }

// ConnState is the state of the gateway uplink.
type ConnState uint8

const (
	EthernetIdle ConnState = iota
	EthernetConfiguring
	EthernetInitializing
	EthernetConnecting
	EthernetHandshake
	EthernetConnected
)

var connStateNames = []string{
	"ETHERNET_IDLE",
	"ETHERNET_CONFIGURING",
	"ETHERNET_INITIALIZING",
	"ETHERNET_CONNECTING",
	"ETHERNET_HANDSHAKE",
	"ETHERNET_CONNECTED",
}

func (s ConnState) String() string { return enumName(connStateNames, int(s)) }

// LinkStatus is the Ethernet link state.
type LinkStatus uint8

const (
	LinkDown LinkStatus = 0
	LinkUp   LinkStatus = 1
)

func (s LinkStatus) String() string { return enumName([]string{"LINK_DOWN", "LINK_UP"}, int(s)) }

// LastError is the last uplink error. Codes 0x05 to 0x0E are reserved.
type LastError uint8

const (
	ErrorNone        LastError = 0x00
	ErrorEPERM       LastError = 0x01
	ErrorENODEV      LastError = 0x02
	ErrorEADDRINUSE  LastError = 0x03
	ErrorEPROTO      LastError = 0x04
	ErrorUnknownLast LastError = 0x0F
)

func (e LastError) String() string {
	switch {
	case e == ErrorUnknownLast:
		return "ERROR_UNKNOWN"
	case e >= 0x05 && e <= 0x0E:
		return "ERROR_RFU" + strconv.Itoa(int(e)-4)
	}
	return enumName([]string{"ERROR_NO_ERROR", "ERROR_EPERM", "ERROR_ENODEV", "ERROR_EADDRINUSE", "ERROR_EPROTO"}, int(e))
}

func lastErrors() []LastError {
	out := make([]LastError, 16)
	for i := range out {
		out[i] = LastError(i)
	}
	return out
}

// DHCPFlag selects how the gateway obtains its addresses.
type DHCPFlag uint8

const (
	DHCPDisabled         DHCPFlag = 0x00
	DHCPEnabledStaticDNS DHCPFlag = 0x01
	DHCPEnabledAutoDNS   DHCPFlag = 0x02
)

func (f DHCPFlag) String() string {
	return enumName([]string{"DHCP_DISABLED", "DHCP_ENABLED_STATIC_DNS", "DHCP_ENABLED_AUTO_DNS"}, int(f))
}

var (
	gatewayCommand = schema.Enum(
		GatewayConfigurationGet, GatewayConfigurationSet, GatewayPacketsGet, GatewayPacketsClear,
		GatewayMTUSizeSet, GatewayEthernetMACAddressSet, GatewayServerAddressAndPortSet,
		GatewayReconnectIntervalSet, GatewayDNSIPAddressSet, GatewayIPAddressSet,
		GatewayGatewayIPAddressSet, GatewayNetmaskSet, GatewayConfigurationStatus, GatewayPacketsStatus,
	)

	serverAddress = schema.LengthPrefixed(schema.U8, schema.GreedyString)

	// Automatic DHCP carries neither addresses nor DNS server. DHCP with a
	// static DNS server adds the DNS address, and disabled DHCP adds the
	// static interface configuration after it.
	autoDHCP = []schema.Field{
		schema.F("mtu_size", schema.U16),
		schema.F("mac_address", macAddress),
		schema.F("server_port_number", schema.U16),
		schema.F("reconnect_interval", schema.U16),
		schema.F("server_address", serverAddress),
	}
	staticDNS = append(append([]schema.Field{}, autoDHCP...),
		schema.F("dns_ip_address", ipv4Address),
	)
	staticIP = append(append([]schema.Field{}, staticDNS...),
		schema.F("ip_address", ipv4Address),
		schema.F("gateway_ip_address", ipv4Address),
		schema.F("netmask", schema.U8),
	)

	configurationSet = schema.OneOf(
		schema.NewStruct(staticIP...),
		schema.NewStruct(staticDNS...),
		schema.NewStruct(autoDHCP...),
	)

	configurationStatus = schema.NewStruct(append(append(
		[]schema.Field{schema.F("chip_revision_id", schema.U8)}, staticIP...),
		schema.F("flags", schema.U8.As(schema.Enum(DHCPDisabled, DHCPEnabledStaticDNS, DHCPEnabledAutoDNS))),
		schema.F("status_code", config.Status),
	)...)

	packetsStatus = schema.NewStruct(
		schema.F("total_eth_rx_errors", schema.U16),
		schema.F("total_eth_tx_errors", schema.U16),
		schema.F("bandwidth", schema.U16),
		schema.F("connection_state", schema.Pack(1,
			schema.Bit("conn_state", 3).As(schema.Enum(
				EthernetIdle, EthernetConfiguring, EthernetInitializing,
				EthernetConnecting, EthernetHandshake, EthernetConnected)),
			schema.Bit("link_status", 1).As(schema.Enum(LinkDown, LinkUp)),
			schema.Bit("last_error", 4).As(schema.Enum(lastErrors()...)),
		)),
	)

	gatewayPayload = schema.On("subopcode",
		schema.When(GatewayConfigurationSet, configurationSet),
		schema.When(GatewayMTUSizeSet, schema.NewStruct(schema.F("mtu_size", schema.U16))),
		schema.When(GatewayEthernetMACAddressSet, schema.NewStruct(schema.F("mac_address", macAddress))),
		schema.When(GatewayServerAddressAndPortSet, schema.NewStruct(
			schema.F("server_port_number", schema.U16),
			schema.F("server_address", serverAddress),
		)),
		schema.When(GatewayReconnectIntervalSet, schema.NewStruct(schema.F("reconnect_interval", schema.U16))),
		schema.When(GatewayDNSIPAddressSet, schema.NewStruct(schema.F("dns_ip_address", ipv4Address))),
		schema.When(GatewayIPAddressSet, schema.NewStruct(schema.F("ip_address", ipv4Address))),
		schema.When(GatewayGatewayIPAddressSet, schema.NewStruct(schema.F("gateway_ip_address", ipv4Address))),
		schema.When(GatewayNetmaskSet, schema.NewStruct(schema.F("netmask", schema.U8))),
		schema.When(GatewayConfigurationStatus, configurationStatus),
		schema.When(GatewayPacketsStatus, packetsStatus),
	).Default(access.Empty).
		Via(gatewayCommand).
		Labeled(func(k int64) string { return GatewayCommand(k).String() })

	gateway = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(gatewayCommand)),
		schema.Embed(gatewayPayload),
	)
)

// GatewayConfigFamily returns the Silvair gateway configuration family.
func GatewayConfigFamily() access.Family {
	return access.Family{
		Name: "silvair_gateway_config",
		Messages: []access.Definition{
			access.Def(GatewayConfig, "SILVAIR_GATEWAY_CONFIG", gateway),
		},
	}
}
