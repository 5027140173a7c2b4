package silvair

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/backkem/btmesh/pkg/schema"
)

// macAdapter renders a 48-bit big-endian integer as a colon separated MAC
// address.
type macAdapter struct{}

func (macAdapter) String() string { return "mac_address" }

func (macAdapter) Decode(raw int64) (any, error) {
	b := make([]string, 6)
	for i := range b {
		b[i] = fmt.Sprintf("%02x", byte(raw>>(8*(5-i))))
	}
	return strings.Join(b, ":"), nil
}

func (macAdapter) Encode(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return schema.ToInt(v)
	}
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return 0, fmt.Errorf("%w: %q is not a MAC-48 address", schema.ErrInvalidValue, s)
	}
	var raw int64
	for _, c := range hw {
		raw = raw<<8 | int64(c)
	}
	return raw, nil
}

// ipv4Adapter renders a 32-bit big-endian integer as a dotted IPv4 address.
type ipv4Adapter struct{}

func (ipv4Adapter) String() string { return "ipv4_address" }

func (ipv4Adapter) Decode(raw int64) (any, error) {
	return netip.AddrFrom4([4]byte{byte(raw >> 24), byte(raw >> 16), byte(raw >> 8), byte(raw)}).String(), nil
}

func (ipv4Adapter) Encode(v any) (int64, error) {
	var addr netip.Addr
	switch x := v.(type) {
	case netip.Addr:
		addr = x
	case string:
		a, err := netip.ParseAddr(x)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", schema.ErrInvalidValue, err)
		}
		addr = a
	default:
		return schema.ToInt(v)
	}
	if !addr.Is4() {
		return 0, fmt.Errorf("%w: %s is not an IPv4 address", schema.ErrInvalidValue, addr)
	}
	b := addr.As4()
	return int64(b[0])<<24 | int64(b[1])<<16 | int64(b[2])<<8 | int64(b[3]), nil
}

var (
	macAddress  = schema.U48.BigEndian().As(macAdapter{})
	ipv4Address = schema.U32.BigEndian().As(ipv4Adapter{})
)

// enumName returns names[v], or "UNKNOWN" outside the table.
func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) && names[v] != "" {
		return names[v]
	}
	return "UNKNOWN"
}
