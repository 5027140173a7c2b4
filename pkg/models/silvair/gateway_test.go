package silvair

import (
	"net/netip"
	"testing"

	"github.com/backkem/btmesh/pkg/models/config"
	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/schema"
)

const (
	ipHost   = "3139322e3136382e302e31"
	nameHost = "7777772e72616e646f6d686f73746e616d652e636f6d2e706c"
)

func gatewaySet(extra C) C {
	out := C{
		"subopcode":          GatewayConfigurationSet,
		"mtu_size":           1200,
		"mac_address":        "ab:cd:ef:ab:cd:ef",
		"server_port_number": 1234,
		"reconnect_interval": 2000,
		"server_address":     "192.168.0.1",
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func TestGatewayConfig(t *testing.T) {
	c := modeltest.Codec(t, Families()...)
	const msg = "SILVAIR_GATEWAY_CONFIG"

	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "configuration get", PDU: "f03601 00", Msg: msg,
			Params: C{"subopcode": GatewayConfigurationGet}},
		{Name: "configuration set auto dhcp", PDU: "f03601 01 b004 abcdefabcdef d204 d007 0b" + ipHost, Msg: msg,
			Params: gatewaySet(nil)},
		{Name: "configuration set auto dhcp hostname", PDU: "f03601 01 b004 abcdefabcdef d204 d007 19" + nameHost, Msg: msg,
			Params: gatewaySet(C{"server_address": "www.randomhostname.com.pl"})},
		{Name: "configuration set static dns", PDU: "f03601 01 b004 abcdefabcdef d204 d007 0b" + ipHost + "0a2a0002", Msg: msg,
			Params: gatewaySet(C{"dns_ip_address": "10.42.0.2"})},
		{Name: "configuration set static dns hostname",
			PDU: "f03601 01 de03 abcdefabcdef abcd 04d2 19" + nameHost + "0a2a0002", Msg: msg,
			Params: gatewaySet(C{
				"mtu_size":           990,
				"server_port_number": 52651,
				"reconnect_interval": 53764,
				"server_address":     "www.randomhostname.com.pl",
				"dns_ip_address":     "10.42.0.2",
			})},
		{Name: "configuration set dhcp disabled",
			PDU: "f03601 01 b004 abcdefabcdef d204 d007 0b" + ipHost + "0a2a0002 c0a80002 c0a80001 08", Msg: msg,
			Params: gatewaySet(C{
				"dns_ip_address":     "10.42.0.2",
				"ip_address":         "192.168.0.2",
				"gateway_ip_address": "192.168.0.1",
				"netmask":            8,
			})},
		{Name: "packets get", PDU: "f03601 02", Msg: msg,
			Params: C{"subopcode": GatewayPacketsGet}},
		{Name: "packets clear", PDU: "f03601 03", Msg: msg,
			Params: C{"subopcode": GatewayPacketsClear}},
		{Name: "mtu size set", PDU: "f03601 04 dc05", Msg: msg,
			Params: C{"subopcode": GatewayMTUSizeSet, "mtu_size": 1500}},
		{Name: "ethernet mac address set", PDU: "f03601 05 112233445566", Msg: msg,
			Params: C{"subopcode": GatewayEthernetMACAddressSet, "mac_address": "11:22:33:44:55:66"}},
		{Name: "server address and port set", PDU: "f03601 06 4522 0b" + ipHost, Msg: msg,
			Params: C{"subopcode": GatewayServerAddressAndPortSet, "server_port_number": 8773, "server_address": "192.168.0.1"}},
		{Name: "server hostname and port set", PDU: "f03601 06 4522 19" + nameHost, Msg: msg,
			Params: C{"subopcode": GatewayServerAddressAndPortSet, "server_port_number": 8773, "server_address": "www.randomhostname.com.pl"}},
		{Name: "reconnect interval set", PDU: "f03601 07 e803", Msg: msg,
			Params: C{"subopcode": GatewayReconnectIntervalSet, "reconnect_interval": 1000}},
		{Name: "dns ip address set", PDU: "f03601 08 0a2a0002", Msg: msg,
			Params: C{"subopcode": GatewayDNSIPAddressSet, "dns_ip_address": "10.42.0.2"}},
		{Name: "ip address set", PDU: "f03601 09 c0a80001", Msg: msg,
			Params: C{"subopcode": GatewayIPAddressSet, "ip_address": "192.168.0.1"}},
		{Name: "gateway ip address set", PDU: "f03601 0a c0a80c03", Msg: msg,
			Params: C{"subopcode": GatewayGatewayIPAddressSet, "gateway_ip_address": "192.168.12.3"}},
		{Name: "netmask set", PDU: "f03601 0b 08", Msg: msg,
			Params: C{"subopcode": GatewayNetmaskSet, "netmask": 8}},
		{Name: "configuration status",
			PDU:    "f03601 0c 0a b202 ddddefabcdef 1111 2222 0f 7777772e74657374696e672e636f6d 7b2c0515 c0a80a02 c0a80a01 0a 00 00",
			Msg:    msg,
			Params: C{
				"subopcode":          GatewayConfigurationStatus,
				"chip_revision_id":   10,
				"mtu_size":           690,
				"mac_address":        "dd:dd:ef:ab:cd:ef",
				"server_port_number": 4369,
				"reconnect_interval": 8738,
				"server_address":     "www.testing.com",
				"dns_ip_address":     "123.44.5.21",
				"ip_address":         "192.168.10.2",
				"gateway_ip_address": "192.168.10.1",
				"netmask":            10,
				"flags":              DHCPDisabled,
				"status_code":        config.StatusSuccess,
			}},
		{Name: "configuration status empty hostname",
			PDU:    "f03601 0c 0a b202 ddddefabcdef 1111 2222 00 c0a80a02 c0a80a02 c0a80a01 0a 02 00",
			Msg:    msg,
			Params: C{
				"subopcode":          GatewayConfigurationStatus,
				"chip_revision_id":   10,
				"mtu_size":           690,
				"mac_address":        "dd:dd:ef:ab:cd:ef",
				"server_port_number": 4369,
				"reconnect_interval": 8738,
				"server_address":     "",
				"dns_ip_address":     "192.168.10.2",
				"ip_address":         "192.168.10.2",
				"gateway_ip_address": "192.168.10.1",
				"netmask":            10,
				"flags":              DHCPEnabledAutoDNS,
				"status_code":        config.StatusSuccess,
			}},
		{Name: "packets status", PDU: "f03601 0d 0000 0002 03e8 92", Msg: msg,
			Params: C{
				"subopcode":           GatewayPacketsStatus,
				"total_eth_rx_errors": 0,
				"total_eth_tx_errors": 512,
				"bandwidth":           59395,
				"connection_state": C{
					"conn_state":  EthernetHandshake,
					"link_status": LinkUp,
					"last_error":  ErrorENODEV,
				},
			}},
	})
}

func TestGatewayAddresses(t *testing.T) {
	c := modeltest.Codec(t, Families()...)
	const msg = "SILVAIR_GATEWAY_CONFIG"

	modeltest.EncodeOnly(t, c, msg, C{
		"subopcode":      GatewayDNSIPAddressSet,
		"dns_ip_address": netip.MustParseAddr("10.42.0.2"),
	}, "f03601 08 0a2a0002")
	modeltest.EncodeOnly(t, c, msg, C{
		"subopcode":   GatewayEthernetMACAddressSet,
		"mac_address": "11-22-33-44-55-66",
	}, "f03601 05 112233445566")

	modeltest.EncodeFails(t, c, msg, C{
		"subopcode":  GatewayIPAddressSet,
		"ip_address": "fe80::1",
	}, schema.ErrInvalidValue)
	modeltest.EncodeFails(t, c, msg, C{
		"subopcode":   GatewayEthernetMACAddressSet,
		"mac_address": "11:22:33",
	}, schema.ErrInvalidValue)
	modeltest.DecodeFails(t, c, "f03601 06 4522 0b 3139", schema.ErrTruncatedInput)
}

func TestGatewayEnumNames(t *testing.T) {
	for _, tc := range []struct {
		got  string
		want string
	}{
		{GatewayServerAddressAndPortSet.String(), "SERVER_ADDRESS_AND_PORT_NUMBER_SET"},
		{EthernetConnected.String(), "ETHERNET_CONNECTED"},
		{ErrorEPROTO.String(), "ERROR_EPROTO"},
		{LastError(0x05).String(), "ERROR_RFU1"},
		{LastError(0x0E).String(), "ERROR_RFU10"},
		{ErrorUnknownLast.String(), "ERROR_UNKNOWN"},
		{DHCPEnabledStaticDNS.String(), "DHCP_ENABLED_STATIC_DNS"},
	} {
		if tc.got != tc.want {
			t.Errorf("String() = %s, want %s", tc.got, tc.want)
		}
	}
}
