package transport

// Source identifies where a frame came from.
type Source int

const (
	// SourceUnknown is the zero value.
	SourceUnknown Source = iota
	// SourceUDP is a datagram socket.
	SourceUDP
	// SourceMQTT is an MQTT broker topic.
	SourceMQTT
	// SourceSerial is a sniffer on a serial line.
	SourceSerial
)

// String returns the lowercase name of the source.
func (s Source) String() string {
	switch s {
	case SourceUDP:
		return "udp"
	case SourceMQTT:
		return "mqtt"
	case SourceSerial:
		return "serial"
	default:
		return "unknown"
	}
}

// IsValid returns true if the source is a known value.
func (s Source) IsValid() bool {
	return s >= SourceUDP && s <= SourceSerial
}
