package config

import (
	"fmt"
	"slices"

	"github.com/backkem/btmesh/pkg/schema"
)

// AddressType classifies a 16-bit mesh address.
type AddressType uint8

const (
	AddressUnassigned AddressType = iota
	AddressUnicast
	AddressGroup
	AddressVirtual
	AddressRFU
	AddressAllProxies
	AddressAllFriends
	AddressAllRelays
	AddressAllNodes
)

func (t AddressType) String() string {
	switch t {
	case AddressUnassigned:
		return "UNASSIGNED"
	case AddressUnicast:
		return "UNICAST"
	case AddressGroup:
		return "GROUP"
	case AddressVirtual:
		return "VIRTUAL"
	case AddressRFU:
		return "RFU"
	case AddressAllProxies:
		return "ALL_PROXIES"
	case AddressAllFriends:
		return "ALL_FRIENDS"
	case AddressAllRelays:
		return "ALL_RELAYS"
	case AddressAllNodes:
		return "ALL_NODES"
	default:
		return "UNKNOWN"
	}
}

// TypeOf classifies addr.
func TypeOf(addr uint16) AddressType {
	switch {
	case addr == 0x0000:
		return AddressUnassigned
	case addr >= 0xFF00 && addr <= 0xFFFB:
		return AddressRFU
	case addr == 0xFFFC:
		return AddressAllProxies
	case addr == 0xFFFD:
		return AddressAllFriends
	case addr == 0xFFFE:
		return AddressAllRelays
	case addr == 0xFFFF:
		return AddressAllNodes
	case addr&0xC000 == 0xC000:
		return AddressGroup
	case addr&0x8000 == 0x8000:
		return AddressVirtual
	}
	return AddressUnicast
}

// addressIn accepts addresses of the listed types.
func addressIn(types ...AddressType) schema.Validator {
	return func(v any) error {
		t, err := addressType(v)
		if err != nil {
			return err
		}
		if !slices.Contains(types, t) {
			return fmt.Errorf("%#04x is a %s address", v, t)
		}
		return nil
	}
}

// addressNotIn rejects addresses of the listed types.
func addressNotIn(types ...AddressType) schema.Validator {
	return func(v any) error {
		t, err := addressType(v)
		if err != nil {
			return err
		}
		if slices.Contains(types, t) {
			return fmt.Errorf("%#04x is a %s address", v, t)
		}
		return nil
	}
}

func addressType(v any) (AddressType, error) {
	i, err := schema.ToInt(v)
	if err != nil {
		return 0, err
	}
	return TypeOf(uint16(i)), nil
}

// Address fields.
var (
	UnicastAddress = schema.U16.Check(addressIn(AddressUnicast))

	NotVirtualAddress = schema.U16.Check(addressNotIn(AddressVirtual))

	SubscriptionAddress = schema.U16.Check(
		addressNotIn(AddressUnassigned, AddressUnicast, AddressAllNodes, AddressVirtual))

	StatusSubscriptionAddress = schema.U16.Check(
		addressNotIn(AddressUnicast, AddressAllNodes))

	UnicastUnassignedAddress = schema.U16.Check(
		addressIn(AddressUnicast, AddressUnassigned))

	UnicastUnassignedGroupAddress = schema.U16.Check(
		addressIn(AddressUnicast, AddressUnassigned, AddressGroup))
)
