// Package transport moves Access-layer PDUs between the codec and the
// outside world: UDP datagrams, MQTT topics and serial sniffer lines.
//
// Every transport decodes what it receives with an access.Codec and hands
// the result to a FrameHandler. A PDU that fails to decode is still
// delivered, with Err set, so callers can record it.
package transport

import (
	"bytes"
	"time"

	"github.com/backkem/btmesh/pkg/access"
)

// MaxPDUSize is the largest Access-layer PDU: 32 segments of 12 octets
// less a 4-octet MIC.
const MaxPDUSize = 380

// Frame is one received PDU.
type Frame struct {
	// Data is the raw PDU, opcode included.
	Data []byte
	// PeerAddr identifies the sender.
	PeerAddr PeerAddress
	// Message is the decoded PDU, or nil when Err is set.
	Message *access.Message
	// Err is the decode error, if any.
	Err error
	// ReceivedAt is the local reception time.
	ReceivedAt time.Time
}

// FrameHandler is called for each received frame.
// Implementations should process frames quickly or dispatch to a goroutine
// to avoid blocking the transport's read loop.
type FrameHandler func(f *Frame)

// newFrame copies data and decodes it with codec.
func newFrame(codec *access.Codec, data []byte, peer PeerAddress) *Frame {
	f := &Frame{
		Data:       bytes.Clone(data),
		PeerAddr:   peer,
		ReceivedAt: time.Now(),
	}
	f.Message, f.Err = codec.Decode(f.Data)
	return f
}
