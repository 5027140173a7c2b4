package config

import (
	"math"
	"reflect"
	"testing"

	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

type C = schema.Container

func TestCompositionData(t *testing.T) {
	c := modeltest.Codec(t, Config())

	emptyElement := C{
		"location":      LocationUnknown,
		"sig_number":    0,
		"vendor_number": 0,
		"sig_models":    []any{},
		"vendor_models": []any{},
	}

	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "8008 00", Msg: "CONFIG_COMPOSITION_DATA_GET", Params: C{"page": 0}},
		{
			Name: "page 0", PDU: "02 00 3601 CE00 FECA EFBE 0BB0 0000 00 00",
			Msg: "CONFIG_COMPOSITION_DATA_STATUS",
			Params: C{
				"page": 0,
				"data": C{
					"cid":      0x0136,
					"pid":      0x00CE,
					"vid":      0xCAFE,
					"crpl":     0xBEEF,
					"features": 0xB00B,
					"elements": []any{emptyElement},
				},
			},
		},
		{
			Name: "page 0 two elements", PDU: "02 00 3601 CE00 FECA EFBE 0BB0 0000 00 00 0000 00 00",
			Msg: "CONFIG_COMPOSITION_DATA_STATUS",
			Params: C{
				"page": 0,
				"data": C{
					"cid":      0x0136,
					"pid":      0x00CE,
					"vid":      0xCAFE,
					"crpl":     0xBEEF,
					"features": 0xB00B,
					"elements": []any{emptyElement, emptyElement},
				},
			},
		},
		{
			Name: "page 255 raw", PDU: "02 FF CAFE",
			Msg:    "CONFIG_COMPOSITION_DATA_STATUS",
			Params: C{"page": 0xFF, "data": []byte{0xCA, 0xFE}},
		},
	})

	// Model counts are derived from the model lists.
	modeltest.EncodeOnly(t, c, "CONFIG_COMPOSITION_DATA_STATUS", C{
		"page": 0,
		"data": C{
			"cid": 0x0136, "pid": 0x00CE, "vid": 0xCAFE, "crpl": 0xBEEF, "features": 0xB00B,
			"elements": []any{C{
				"location":      0,
				"sig_models":    []any{C{"model_id": 0x1000}},
				"vendor_models": []any{},
			}},
		},
	}, "02 00 3601 CE00 FECA EFBE 0BB0 0000 01 00 0010")

	modeltest.EncodeFails(t, c, "CONFIG_COMPOSITION_DATA_STATUS", C{
		"page": 0,
		"data": C{
			"cid": 0x0136, "pid": 0x00CE, "vid": 0xCAFE, "crpl": 0xBEEF, "features": 0xB00B,
			"elements": []any{C{
				"location":      0,
				"sig_number":    2,
				"sig_models":    []any{C{"model_id": 0x1000}},
				"vendor_models": []any{},
			}},
		},
	}, schema.ErrInvalidValue)
}

func TestCompositionElement(t *testing.T) {
	tests := []struct {
		name string
		data string
		want C
	}{
		{
			name: "sig and vendor",
			data: "0000 01 01 ADDE EFBEADDE",
			want: C{
				"location":      LocationUnknown,
				"sig_number":    1,
				"vendor_number": 1,
				"sig_models":    []any{C{"model_id": 0xDEAD}},
				"vendor_models": []any{C{"vendor_id": 0xBEEF, "model_id": 0xDEAD}},
			},
		},
		{
			name: "no sig",
			data: "0000 00 01 EFBEADDE",
			want: C{
				"location":      LocationUnknown,
				"sig_number":    0,
				"vendor_number": 1,
				"sig_models":    []any{},
				"vendor_models": []any{C{"vendor_id": 0xBEEF, "model_id": 0xDEAD}},
			},
		},
		{
			name: "main location",
			data: "0601 01 00 ADDE",
			want: C{
				"location":      LocationMain,
				"sig_number":    1,
				"vendor_number": 0,
				"sig_models":    []any{C{"model_id": 0xDEAD}},
				"vendor_models": []any{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := modeltest.Hex(t, tt.data)
			got, err := schema.Decode(element, data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			assertContainer(t, got, tt.want)

			// Counts are computed from the model lists.
			in := C{}
			for k, v := range tt.want {
				in[k] = v
			}
			delete(in, "sig_number")
			delete(in, "vendor_number")
			enc, err := schema.Encode(element, in)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if string(enc) != string(data) {
				t.Errorf("Encode() = %x, want %x", enc, data)
			}
		})
	}
}

func TestFeatures(t *testing.T) {
	c := modeltest.Codec(t, Config())

	retransmit := func(count, interval int) C {
		return C{"count": count, "interval": interval}
	}

	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "beacon get", PDU: "8009", Msg: "CONFIG_BEACON_GET"},
		{Name: "beacon set", PDU: "800A 00", Msg: "CONFIG_BEACON_SET", Params: C{"beacon": BeaconOff}},
		{Name: "beacon status", PDU: "800B 01", Msg: "CONFIG_BEACON_STATUS", Params: C{"beacon": BeaconOn}},
		{Name: "ttl min", PDU: "800D 00", Msg: "CONFIG_DEFAULT_TTL_SET", Params: C{"ttl": 0}},
		{Name: "ttl", PDU: "800E 0B", Msg: "CONFIG_DEFAULT_TTL_STATUS", Params: C{"ttl": 0x0B}},
		{Name: "ttl max", PDU: "800D 7F", Msg: "CONFIG_DEFAULT_TTL_SET", Params: C{"ttl": 0x7F}},
		{Name: "proxy disabled", PDU: "8013 00", Msg: "CONFIG_GATT_PROXY_SET", Params: C{"gatt_proxy": FeatureDisabled}},
		{Name: "proxy enabled", PDU: "8014 01", Msg: "CONFIG_GATT_PROXY_STATUS", Params: C{"gatt_proxy": FeatureEnabled}},
		{Name: "friend", PDU: "8011 02", Msg: "CONFIG_FRIEND_STATUS", Params: C{"friend": FeatureNotSupported}},
		{Name: "relay get", PDU: "8026", Msg: "CONFIG_RELAY_GET"},
		{
			Name: "relay set", PDU: "8027 0000", Msg: "CONFIG_RELAY_SET",
			Params: C{"relay": FeatureDisabled, "retransmit": retransmit(0, 10)},
		},
		{
			Name: "relay status", PDU: "8028 0200", Msg: "CONFIG_RELAY_STATUS",
			Params: C{"relay": FeatureNotSupported, "retransmit": retransmit(0, 10)},
		},
		{
			Name: "relay max steps", PDU: "8027 01F8", Msg: "CONFIG_RELAY_SET",
			Params: C{"relay": FeatureEnabled, "retransmit": retransmit(0, 320)},
		},
		{Name: "network transmit", PDU: "8024 F9", Msg: "CONFIG_NETWORK_TRANSMIT_SET", Params: retransmit(1, 320)},
		{Name: "network transmit status", PDU: "8025 07", Msg: "CONFIG_NETWORK_TRANSMIT_STATUS", Params: retransmit(7, 10)},
	})

	modeltest.DecodeFails(t, c, "800D 80", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "8013 03", schema.ErrFieldValidationFailed)
	modeltest.EncodeFails(t, c, "CONFIG_DEFAULT_TTL_SET", C{"ttl": 0x80}, schema.ErrFieldValidationFailed)
	modeltest.EncodeFails(t, c, "CONFIG_NETWORK_TRANSMIT_SET", retransmit(8, 10), schema.ErrFieldValidationFailed)
	modeltest.EncodeFails(t, c, "CONFIG_NETWORK_TRANSMIT_SET", retransmit(1, 5), schema.ErrFieldValidationFailed)
}

func TestPublication(t *testing.T) {
	c := modeltest.Codec(t, Config())

	modeltest.Run(t, c, []modeltest.Vector{
		{
			Name: "get sig", PDU: "8018 0102 0304", Msg: "CONFIG_MODEL_PUBLICATION_GET",
			Params: C{"element_address": 0x0201, "model": C{"model_id": 0x0403}},
		},
		{
			Name: "get vendor", PDU: "8018 0102 0304 0506", Msg: "CONFIG_MODEL_PUBLICATION_GET",
			Params: C{"element_address": 0x0201, "model": C{"vendor_id": 0x0403, "model_id": 0x0605}},
		},
		{
			Name: "set vendor", PDU: "03 0102 0100 BC1A 7F C0 07 0304 0506", Msg: "CONFIG_MODEL_PUBLICATION_SET",
			Params: C{
				"element_address": 0x0201,
				"publish_address": 0x0001,
				"credential_flag": FriendshipSecurity,
				"app_key_index":   0xABC,
				"ttl":             0x7F,
				"publish_period":  C{"step_resolution": Resolution10min, "number_of_steps": 0},
				"retransmit":      C{"count": 7, "interval": 50},
				"model":           C{"vendor_id": 0x0403, "model_id": 0x0605},
			},
		},
		{
			Name: "set sig", PDU: "03 0201 0403 0500 06 07 11 0403", Msg: "CONFIG_MODEL_PUBLICATION_SET",
			Params: C{
				"element_address": 0x0102,
				"publish_address": 0x0304,
				"credential_flag": MasterSecurity,
				"app_key_index":   5,
				"ttl":             6,
				"publish_period":  C{"step_resolution": Resolution100ms, "number_of_steps": 7},
				"retransmit":      C{"count": 1, "interval": 150},
				"model":           C{"model_id": 0x0304},
			},
		},
		{
			Name: "status", PDU: "8019 02 0201 0403 0500 06 07 11 0403 0605", Msg: "CONFIG_MODEL_PUBLICATION_STATUS",
			Params: C{
				"status":          StatusInvalidModel,
				"element_address": 0x0102,
				"publish_address": 0x0304,
				"credential_flag": MasterSecurity,
				"app_key_index":   5,
				"ttl":             6,
				"publish_period":  C{"step_resolution": Resolution100ms, "number_of_steps": 7},
				"retransmit":      C{"count": 1, "interval": 150},
				"model":           C{"vendor_id": 0x0304, "model_id": 0x0506},
			},
		},
	})

	// Reserved bits survive a decode.
	msg, err := c.Decode(modeltest.Hex(t, "03 0201 0403 05E0 06 07 11 0403"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if msg.Params["_rfu"] != 7 {
		t.Errorf("_rfu = %v, want 7", msg.Params["_rfu"])
	}

	// Virtual publish addresses need the label form.
	modeltest.DecodeFails(t, c, "03 0201 0080 0500 06 07 11 0403", schema.ErrFieldValidationFailed)
	// Element addresses are unicast.
	modeltest.DecodeFails(t, c, "8018 01C0 0304", schema.ErrFieldValidationFailed)

	label := make([]byte, 16)
	for i := range label {
		label[i] = byte(i)
	}
	modeltest.EncodeOnly(t, c, "CONFIG_MODEL_PUBLICATION_VIRTUAL_ADDRESS_SET", C{
		"element_address": 0x0102,
		"publish_address": label,
		"credential_flag": "FRIENDSHIP_SECURITY",
		"app_key_index":   1,
		"ttl":             5,
		"publish_period":  C{"step_resolution": "RESOLUTION_1_S", "number_of_steps": 10},
		"retransmit":      C{"count": 2, "interval": 100},
		"model":           C{"model_id": 0x1000},
	}, "801A 0201 000102030405060708090A0B0C0D0E0F 0110 05 4A 0A 0010")
}

func TestSubscription(t *testing.T) {
	c := modeltest.Codec(t, Config())

	modeltest.Run(t, c, []modeltest.Vector{
		{
			Name: "add sig", PDU: "801B AA11 BBC2 CC33", Msg: "CONFIG_MODEL_SUBSCRIPTION_ADD",
			Params: C{"element_address": 0x11AA, "address": 0xC2BB, "model": C{"model_id": 0x33CC}},
		},
		{
			Name: "add vendor", PDU: "801B 0201 FDFF 3F00 2A00", Msg: "CONFIG_MODEL_SUBSCRIPTION_ADD",
			Params: C{"element_address": 0x0102, "address": 0xFFFD, "model": C{"vendor_id": 0x003F, "model_id": 0x002A}},
		},
		{
			Name: "status unassigned", PDU: "801F 00 AA11 0000 CC33", Msg: "CONFIG_MODEL_SUBSCRIPTION_STATUS",
			Params: C{"status": StatusSuccess, "element_address": 0x11AA, "address": 0, "model": C{"model_id": 0x33CC}},
		},
		{
			Name: "status virtual", PDU: "801F 00 AA11 0080 CC33", Msg: "CONFIG_MODEL_SUBSCRIPTION_STATUS",
			Params: C{"status": StatusSuccess, "element_address": 0x11AA, "address": 0x8000, "model": C{"model_id": 0x33CC}},
		},
		{
			Name: "delete all", PDU: "801D AA11 CC33", Msg: "CONFIG_MODEL_SUBSCRIPTION_DELETE_ALL",
			Params: C{"element_address": 0x11AA, "model": C{"model_id": 0x33CC}},
		},
		{
			Name: "va add", PDU: "8020 AA11 00112233445566778899AABBCCDDEEFF CC33", Msg: "CONFIG_MODEL_SUBSCRIPTION_VIRTUAL_ADDRESS_ADD",
			Params: C{
				"element_address": 0x11AA,
				"label":           modeltest.Hex(t, "00112233445566778899AABBCCDDEEFF"),
				"model":           C{"model_id": 0x33CC},
			},
		},
		{
			Name: "sig list", PDU: "802A 00 AA11 CC33 01C0 02C0", Msg: "CONFIG_SIG_MODEL_SUBSCRIPTION_LIST",
			Params: C{
				"status":          StatusSuccess,
				"element_address": 0x11AA,
				"model":           C{"model_id": 0x33CC},
				"addresses":       []any{0xC001, 0xC002},
			},
		},
		{
			Name: "vendor list empty", PDU: "802C 08 AA11 3601 0100", Msg: "CONFIG_VENDOR_MODEL_SUBSCRIPTION_LIST",
			Params: C{
				"status":          StatusNotASubscribeModel,
				"element_address": 0x11AA,
				"model":           C{"vendor_id": 0x0136, "model_id": 0x0001},
				"addresses":       []any{},
			},
		},
	})

	// Subscriptions to unicast, unassigned, all-nodes or virtual addresses
	// are rejected.
	for _, addr := range []string{"0100", "0000", "FFFF", "0080"} {
		modeltest.DecodeFails(t, c, "801B AA11 "+addr+" CC33", schema.ErrFieldValidationFailed)
	}
	modeltest.DecodeFails(t, c, "801F 00 AA11 0100 CC33", schema.ErrFieldValidationFailed)
}

func TestKeys(t *testing.T) {
	c := modeltest.Codec(t, Config())

	modeltest.Run(t, c, []modeltest.Vector{
		{
			Name: "appkey add", PDU: "00 012345 000102030405060708090A0B0C0D0E0F", Msg: "CONFIG_APPKEY_ADD",
			Params: C{
				"net_key_index": 0x301,
				"app_key_index": 0x452,
				"app_key":       modeltest.Hex(t, "000102030405060708090A0B0C0D0E0F"),
			},
		},
		{
			Name: "appkey add 2", PDU: "00 236145 63964771734fbd76e3b40519d1d94a48", Msg: "CONFIG_APPKEY_ADD",
			Params: C{
				"net_key_index": 0x123,
				"app_key_index": 0x456,
				"app_key":       modeltest.Hex(t, "63964771734fbd76e3b40519d1d94a48"),
			},
		},
		{Name: "appkey get", PDU: "8001 0200", Msg: "CONFIG_APPKEY_GET", Params: C{"net_key_index": 2}},
		{
			Name: "appkey status", PDU: "8003 00 332322", Msg: "CONFIG_APPKEY_STATUS",
			Params: C{"status": StatusSuccess, "net_key_index": 0x333, "app_key_index": 0x222},
		},
		{
			Name: "appkey list even", PDU: "8002 00 0b00 010000 012100", Msg: "CONFIG_APPKEY_LIST",
			Params: C{"status": StatusSuccess, "net_key_index": 11, "app_key_indices": []int{0, 1, 2, 257}},
		},
		{
			Name: "appkey list odd", PDU: "8002 00 0b00 563412 8907", Msg: "CONFIG_APPKEY_LIST",
			Params: C{"status": StatusSuccess, "net_key_index": 11, "app_key_indices": []int{0x123, 0x456, 0x789}},
		},
		{Name: "netkey list even", PDU: "8043 42b000", Msg: "CONFIG_NETKEY_LIST", Params: C{"net_key_indices": []int{11, 66}}},
		{Name: "netkey list odd", PDU: "8043 43d002 5800", Msg: "CONFIG_NETKEY_LIST", Params: C{"net_key_indices": []int{45, 67, 88}}},
		{
			Name: "netkey add", PDU: "8040 4305 000102030405060708090A0B0C0D0E0F", Msg: "CONFIG_NETKEY_ADD",
			Params: C{"net_key_index": 0x543, "net_key": modeltest.Hex(t, "000102030405060708090A0B0C0D0E0F")},
		},
		{Name: "netkey delete", PDU: "8041 4305", Msg: "CONFIG_NETKEY_DELETE", Params: C{"net_key_index": 0x543}},
		{
			Name: "netkey status", PDU: "8044 04 4305", Msg: "CONFIG_NETKEY_STATUS",
			Params: C{"status": StatusInvalidNetKeyIndex, "net_key_index": 0x543},
		},
	})

	modeltest.EncodeFails(t, c, "CONFIG_NETKEY_DELETE", C{"net_key_index": 0x1000}, nil)
	modeltest.DecodeFails(t, c, "8040 4305 0001", schema.ErrTruncatedInput)
}

func TestModelApp(t *testing.T) {
	c := modeltest.Codec(t, Config())

	modeltest.Run(t, c, []modeltest.Vector{
		{
			Name: "bind", PDU: "803D 0201 0100 0010", Msg: "CONFIG_MODEL_APP_BIND",
			Params: C{"element_address": 0x0102, "app_key_index": 1, "model": C{"model_id": 0x1000}},
		},
		{
			Name: "status vendor", PDU: "803E 00 0201 0100 3601 0100", Msg: "CONFIG_MODEL_APP_STATUS",
			Params: C{
				"status":          StatusSuccess,
				"element_address": 0x0102,
				"app_key_index":   1,
				"model":           C{"vendor_id": 0x0136, "model_id": 0x0001},
			},
		},
		{
			Name: "sig app list", PDU: "804C 00 0201 0010 021000", Msg: "CONFIG_SIG_MODEL_APP_LIST",
			Params: C{
				"status":          StatusSuccess,
				"element_address": 0x0102,
				"model":           C{"model_id": 0x1000},
				"app_key_indices": []int{1, 2},
			},
		},
		{
			Name: "vendor app get", PDU: "804D 0201 3601 0100", Msg: "CONFIG_VENDOR_MODEL_APP_GET",
			Params: C{"element_address": 0x0102, "model": C{"vendor_id": 0x0136, "model_id": 0x0001}},
		},
	})
}

func TestNodeState(t *testing.T) {
	c := modeltest.Codec(t, Config())

	modeltest.Run(t, c, []modeltest.Vector{
		{
			Name: "identity set", PDU: "8047 FF0F 01", Msg: "CONFIG_NODE_IDENTITY_SET",
			Params: C{"net_key_index": 0xFFF, "identity": NodeIdentityRunning},
		},
		{
			Name: "identity status", PDU: "8048 00 FF0F 01", Msg: "CONFIG_NODE_IDENTITY_STATUS",
			Params: C{"status": StatusSuccess, "net_key_index": 0xFFF, "identity": NodeIdentityRunning},
		},
		{Name: "reset", PDU: "8049", Msg: "CONFIG_NODE_RESET"},
		{Name: "reset status", PDU: "804A", Msg: "CONFIG_NODE_RESET_STATUS"},
		{
			Name: "key refresh set", PDU: "8016 0100 03", Msg: "CONFIG_KEY_REFRESH_PHASE_SET",
			Params: C{"net_key_index": 1, "transition": KeyRefreshThird},
		},
		{
			Name: "key refresh status", PDU: "8017 00 0100 02", Msg: "CONFIG_KEY_REFRESH_PHASE_STATUS",
			Params: C{"status": StatusSuccess, "net_key_index": 1, "phase": KeyRefreshSecond},
		},
		{
			Name: "poll timeout", PDU: "802E 0100 102700", Msg: "CONFIG_LOW_POWER_NODE_POLLTIMEOUT_STATUS",
			Params: C{"lpn_address": 1, "poll_timeout": 10000},
		},
	})

	// Transition to phase 1 is not a valid request.
	modeltest.DecodeFails(t, c, "8016 0100 01", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "8017 00 0100 03", schema.ErrFieldValidationFailed)
}

func TestHeartbeat(t *testing.T) {
	c := modeltest.Codec(t, Config())

	publication := func(count, period any) C {
		return C{
			"destination":   0x0201,
			"count":         count,
			"period":        period,
			"ttl":           5,
			"features":      []int{5, 6, 13, 14, 15},
			"net_key_index": 0x908,
		}
	}

	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "publication get", PDU: "8038", Msg: "CONFIG_HEARTBEAT_PUBLICATION_GET"},
		{
			Name: "publication set", PDU: "8039 0102 03 04 05 0607 0809", Msg: "CONFIG_HEARTBEAT_PUBLICATION_SET",
			Params: publication(4, 8),
		},
		{
			Name: "infinite count", PDU: "8039 0102 ff 06 05 0607 0809", Msg: "CONFIG_HEARTBEAT_PUBLICATION_SET",
			Params: publication(math.Inf(1), 32),
		},
		{
			Name: "long period", PDU: "8039 0102 ff 10 05 0607 0809", Msg: "CONFIG_HEARTBEAT_PUBLICATION_SET",
			Params: publication(math.Inf(1), 0x8000),
		},
		{
			Name: "subscription status", PDU: "803C 00 0100 01C0 05 04 01 7F", Msg: "CONFIG_HEARTBEAT_SUBSCRIPTION_STATUS",
			Params: C{
				"status":      StatusSuccess,
				"source":      1,
				"destination": 0xC001,
				"period_log":  16,
				"count":       8,
				"min_hops":    1,
				"max_hops":    0x7F,
			},
		},
	})

	modeltest.DecodeFails(t, c, "8039 0102 03 04 80 0607 0809", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "8039 0102 11 04 05 0607 0809", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "8039 0102 03 11 05 0607 0809", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "803B 01C0 0100 01", schema.ErrFieldValidationFailed)

	modeltest.EncodeFails(t, c, "CONFIG_HEARTBEAT_PUBLICATION_SET", publication(1, 0x8001), schema.ErrFieldValidationFailed)
	modeltest.EncodeFails(t, c, "CONFIG_HEARTBEAT_PUBLICATION_SET", publication(1, math.Inf(1)), schema.ErrFieldValidationFailed)
}

func TestAddressType(t *testing.T) {
	tests := []struct {
		addr uint16
		want AddressType
	}{
		{0x0000, AddressUnassigned},
		{0x0001, AddressUnicast},
		{0x7FFF, AddressUnicast},
		{0x8000, AddressVirtual},
		{0xBFFF, AddressVirtual},
		{0xC000, AddressGroup},
		{0xFEFF, AddressGroup},
		{0xFF00, AddressRFU},
		{0xFFFB, AddressRFU},
		{0xFFFC, AddressAllProxies},
		{0xFFFD, AddressAllFriends},
		{0xFFFE, AddressAllRelays},
		{0xFFFF, AddressAllNodes},
	}
	for _, tt := range tests {
		if got := TypeOf(tt.addr); got != tt.want {
			t.Errorf("TypeOf(%#04x) = %s, want %s", tt.addr, got, tt.want)
		}
	}
}

func TestLocationNames(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{0x0000, "UNKNOWN"},
		{0x0001, "FIRST"},
		{0x000C, "TWELVETH"},
		{0x0014, "TWENTIETH"},
		{0x0015, "TWENTY_FIRST"},
		{0x0063, "NINETY_NINTH"},
		{0x0064, "ONE_HUNDREDTH"},
		{0x0065, "ONE_HUNDRED_AND_FIRST"},
		{0x006E, "ONE_HUNDRED_AND_TENTH"},
		{0x0078, "ONE_HUNDRED_TWENTIETH"},
		{0x0079, "ONE_HUNDRED_AND_TWENTY_FIRST"},
		{0x00C8, "TWO_HUNDREDTH"},
		{0x00FF, "TWO_HUNDRED_AND_FIFTY_FIFTH"},
		{LocationFront, "FRONT"},
		{LocationExternal, "EXTERNAL"},
		{0x0111, "RFU"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("Location(%#04x).String() = %s, want %s", uint16(tt.loc), got, tt.want)
		}
	}

	if n := len(Locations()); n != 0x100+17 {
		t.Errorf("len(Locations()) = %d, want %d", n, 0x100+17)
	}
}

func TestKeyIndexFields(t *testing.T) {
	node := schema.NewStruct(units.SingleKeyIndex("key_index"))
	got, err := schema.Decode(node, []byte{0xbc, 0x0a})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	assertContainer(t, got, C{"key_index": 0xABC})
}

func TestFamilies(t *testing.T) {
	c := modeltest.Codec(t, Families()...)
	if n := len(c.Messages()); n != 71 {
		t.Errorf("registered %d messages, want 71", n)
	}
}

func assertContainer(t *testing.T, got any, want C) {
	t.Helper()
	c, ok := got.(C)
	if !ok {
		t.Fatalf("decoded %T, want container", got)
	}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("decoded %#v, want %#v", c, want)
	}
}
