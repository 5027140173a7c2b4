package transport

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pion/logging"
	"go.bug.st/serial"

	"github.com/backkem/btmesh/pkg/access"
)

// DefaultBaudRate is the default sniffer baud rate.
const DefaultBaudRate = 115200

// SerialConfig configures a serial sniffer.
type SerialConfig struct {
	// Port is the serial port path (e.g., "/dev/ttyACM0").
	// Ignored if Conn is provided.
	Port string

	// BaudRate is the line speed. Default: DefaultBaudRate.
	BaudRate int

	// Conn is an optional pre-opened line, used instead of Port.
	Conn io.ReadWriteCloser

	// Codec decodes received lines. Required.
	Codec *access.Codec

	// FrameHandler is called for each received frame. Required.
	FrameHandler FrameHandler

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Serial reads Access-layer PDUs from a sniffer dongle. The dongle prints
// one PDU per line as hex; blank lines and lines starting with '#' are
// ignored.
type Serial struct {
	config SerialConfig
	name   string
	log    logging.LeveledLogger

	mu      sync.Mutex
	conn    io.ReadWriteCloser
	started bool
	closed  bool
	done    chan struct{}
	cancel  context.CancelFunc
}

// NewSerial creates a serial sniffer. The port is opened by Start.
func NewSerial(config SerialConfig) (*Serial, error) {
	if config.Conn == nil && config.Port == "" {
		return nil, fmt.Errorf("%w: serial port", ErrMissingConfig)
	}
	if config.Codec == nil {
		return nil, ErrNoCodec
	}
	if config.FrameHandler == nil {
		return nil, ErrNoHandler
	}
	if config.BaudRate == 0 {
		config.BaudRate = DefaultBaudRate
	}

	s := &Serial{config: config, name: config.Port, conn: config.Conn}
	if s.name == "" {
		s.name = "serial"
	}
	if config.LoggerFactory != nil {
		s.log = config.LoggerFactory.NewLogger("serial")
	}
	return s, nil
}

// Start opens the port and begins reading. Reading stops when ctx is done
// or Close is called.
func (s *Serial) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.started {
		return ErrAlreadyStarted
	}

	if s.conn == nil {
		port, err := serial.Open(s.config.Port, &serial.Mode{BaudRate: s.config.BaudRate})
		if err != nil {
			return fmt.Errorf("transport: opening %s: %w", s.config.Port, err)
		}
		s.conn = port
	}
	s.started = true
	s.done = make(chan struct{})

	ctx, s.cancel = context.WithCancel(ctx)
	go s.readLoop(s.conn)
	go func() {
		<-ctx.Done()
		s.Close()
	}()

	if s.log != nil {
		s.log.Infof("sniffing %s at %d baud", s.name, s.config.BaudRate)
	}
	return nil
}

// Close closes the port and waits for the read loop to exit.
func (s *Serial) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.closed = true
	conn, done, cancel := s.conn, s.done, s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	var err error
	if conn != nil {
		err = conn.Close()
	}
	if done != nil {
		<-done
	}
	if s.log != nil {
		s.log.Infof("closed %s", s.name)
	}
	return err
}

// WritePDU encodes msg and writes it as one hex line.
func (s *Serial) WritePDU(msg *access.Message) error {
	data, err := s.config.Codec.Encode(msg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if !s.started {
		return ErrNotStarted
	}
	_, err = io.WriteString(s.conn, hex.EncodeToString(data)+"\n")
	return err
}

func (s *Serial) readLoop(conn io.Reader) {
	defer close(s.done)

	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			s.handleLine(line)
		}
		if err != nil {
			if err != io.EOF && s.log != nil && !s.isClosed() {
				s.log.Warnf("read error on %s: %v", s.name, err)
			}
			return
		}
	}
}

// handleLine decodes one sniffer line and delivers it.
func (s *Serial) handleLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	data, err := hex.DecodeString(strings.ReplaceAll(line, " ", ""))
	if err != nil || len(data) == 0 || len(data) > MaxPDUSize {
		if s.log != nil {
			s.log.Warnf("dropping malformed line on %s: %q", s.name, line)
		}
		return
	}

	s.config.FrameHandler(newFrame(s.config.Codec, data, NewSerialPeerAddress(s.name)))
}

func (s *Serial) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
