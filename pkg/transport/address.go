package transport

import (
	"fmt"
	"net"
)

// PeerAddress identifies the sender of a frame.
type PeerAddress struct {
	// Addr is the network address of a UDP peer. It is nil for other sources.
	Addr net.Addr
	// Name is the MQTT topic or serial port the frame arrived on.
	Name string
	// Source is the kind of transport.
	Source Source
}

// String returns a human-readable representation of the peer address.
func (p PeerAddress) String() string {
	switch {
	case p.Addr != nil:
		return fmt.Sprintf("%s:%s", p.Source, p.Addr)
	case p.Name != "":
		return fmt.Sprintf("%s:%s", p.Source, p.Name)
	default:
		return fmt.Sprintf("%s:<nil>", p.Source)
	}
}

// IsValid returns true if the address has a known source and a location.
func (p PeerAddress) IsValid() bool {
	return p.Source.IsValid() && (p.Addr != nil || p.Name != "")
}

// NewUDPPeerAddress creates a PeerAddress for a UDP peer.
func NewUDPPeerAddress(addr net.Addr) PeerAddress {
	return PeerAddress{Addr: addr, Source: SourceUDP}
}

// NewMQTTPeerAddress creates a PeerAddress for a frame received on topic.
func NewMQTTPeerAddress(topic string) PeerAddress {
	return PeerAddress{Name: topic, Source: SourceMQTT}
}

// NewSerialPeerAddress creates a PeerAddress for a frame read from port.
func NewSerialPeerAddress(port string) PeerAddress {
	return PeerAddress{Name: port, Source: SourceSerial}
}

// UDPAddrFromString parses an address string and creates a UDP PeerAddress.
func UDPAddrFromString(addr string) (PeerAddress, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return PeerAddress{}, err
	}
	return NewUDPPeerAddress(udpAddr), nil
}
