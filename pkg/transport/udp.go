package transport

import (
	"net"
	"sync"
	"time"

	"github.com/pion/logging"

	"github.com/backkem/btmesh/pkg/access"
)

// UDP carries one Access-layer PDU per datagram.
// It wraps a net.PacketConn and provides a read loop that decodes each
// datagram and calls the configured FrameHandler.
type UDP struct {
	conn    net.PacketConn
	codec   *access.Codec
	handler FrameHandler
	closeCh chan struct{}
	wg      sync.WaitGroup
	log     logging.LeveledLogger

	mu      sync.RWMutex
	started bool
	closed  bool
}

// UDPConfig configures the UDP transport.
type UDPConfig struct {
	// Conn is an optional pre-existing PacketConn to use.
	// If nil, a new connection will be created using ListenAddr.
	Conn net.PacketConn

	// ListenAddr is the address to listen on (e.g., ":7070").
	// Ignored if Conn is provided.
	ListenAddr string

	// Codec decodes received datagrams and encodes sent messages.
	// Required.
	Codec *access.Codec

	// FrameHandler is called for each received frame.
	// Required.
	FrameHandler FrameHandler

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// NewUDP creates a new UDP transport with the given configuration.
func NewUDP(config UDPConfig) (*UDP, error) {
	if config.FrameHandler == nil {
		return nil, ErrNoHandler
	}
	if config.Codec == nil {
		return nil, ErrNoCodec
	}

	u := &UDP{
		conn:    config.Conn,
		codec:   config.Codec,
		handler: config.FrameHandler,
		closeCh: make(chan struct{}),
	}

	if config.LoggerFactory != nil {
		u.log = config.LoggerFactory.NewLogger("transport")
	}

	if u.conn == nil {
		addr := config.ListenAddr
		if addr == "" {
			addr = ":0"
		}

		conn, err := net.ListenPacket("udp", addr)
		if err != nil {
			return nil, err
		}
		u.conn = conn
	}

	return u, nil
}

// Start begins the read loop for receiving frames.
func (u *UDP) Start() error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return ErrClosed
	}
	if u.started {
		u.mu.Unlock()
		return ErrAlreadyStarted
	}
	u.started = true
	u.mu.Unlock()

	if u.log != nil {
		u.log.Infof("starting UDP transport on %s", u.conn.LocalAddr())
	}

	u.wg.Add(1)
	go u.readLoop()

	return nil
}

// Stop closes the transport and waits for the read loop to exit.
func (u *UDP) Stop() error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return ErrClosed
	}
	u.closed = true
	u.mu.Unlock()

	if u.log != nil {
		u.log.Info("stopping UDP transport")
	}

	close(u.closeCh)

	// Unblock a pending read.
	u.conn.SetReadDeadline(time.Now())
	u.conn.Close()
	u.wg.Wait()

	return nil
}

// Send encodes msg and sends it to addr.
func (u *UDP) Send(msg *access.Message, addr net.Addr) error {
	data, err := u.codec.Encode(msg)
	if err != nil {
		return err
	}
	return u.SendPDU(data, addr)
}

// SendPDU sends an already encoded PDU to addr.
func (u *UDP) SendPDU(data []byte, addr net.Addr) error {
	u.mu.RLock()
	if u.closed {
		u.mu.RUnlock()
		return ErrClosed
	}
	u.mu.RUnlock()

	if addr == nil {
		return ErrInvalidAddress
	}

	if len(data) > MaxPDUSize {
		return ErrMessageTooLarge
	}

	if u.log != nil {
		u.log.Debugf("sending %d bytes to %v", len(data), addr)
	}

	if _, err := u.conn.WriteTo(data, addr); err != nil {
		if u.log != nil {
			u.log.Warnf("send failed: %v", err)
		}
		return err
	}

	return nil
}

// LocalAddr returns the local address the transport is listening on.
func (u *UDP) LocalAddr() net.Addr {
	return u.conn.LocalAddr()
}

func (u *UDP) readLoop() {
	defer u.wg.Done()

	buf := make([]byte, MaxPDUSize+1)

	for {
		select {
		case <-u.closeCh:
			return
		default:
		}

		n, addr, err := u.conn.ReadFrom(buf)
		if err != nil {
			select {
			case <-u.closeCh:
				return
			default:
				if u.log != nil {
					u.log.Warnf("UDP read error: %v", err)
				}
				continue
			}
		}

		if n == 0 {
			continue
		}
		if n > MaxPDUSize {
			if u.log != nil {
				u.log.Warnf("dropping oversized datagram from %v", addr)
			}
			continue
		}

		f := newFrame(u.codec, buf[:n], NewUDPPeerAddress(addr))
		if u.log != nil {
			if f.Err != nil {
				u.log.Debugf("undecodable PDU from %v: %v", addr, f.Err)
			} else {
				u.log.Tracef("received %s from %v", u.codec.Name(f.Message.Opcode), addr)
			}
		}

		u.handler(f)
	}
}
