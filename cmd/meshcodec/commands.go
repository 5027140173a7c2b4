package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/pion/logging"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/api"
	"github.com/backkem/btmesh/pkg/capture"
	"github.com/backkem/btmesh/pkg/mesh"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/transport"
)

func (e *env) loggerFactory() logging.LoggerFactory {
	f := logging.NewDefaultLoggerFactory()
	f.Writer = e.stderr
	f.DefaultLogLevel = e.opts.LogLevel
	return f
}

func (e *env) codec() (*access.Codec, error) {
	return mesh.NewCodec(access.CodecConfig{LoggerFactory: e.loggerFactory()})
}

func (e *env) projection() access.ProjectionOptions {
	return access.ProjectionOptions{CamelCase: e.opts.CamelCase}
}

// openCapture opens the capture store when one is configured.
func (e *env) openCapture() (*capture.Store, error) {
	if e.opts.CapturePath == "" {
		return nil, nil
	}
	return capture.Open(capture.Config{Path: e.opts.CapturePath, LoggerFactory: e.loggerFactory()})
}

func runDecode(_ context.Context, e *env) error {
	codec, err := e.codec()
	if err != nil {
		return err
	}

	inputs := e.args
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(e.stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	var failed int
	for _, in := range inputs {
		pdu, err := schema.ToBytes(in)
		if err != nil {
			return fmt.Errorf("decode %q: %w", in, err)
		}
		msg, err := codec.Decode(pdu)
		if err != nil {
			fmt.Fprintf(e.stderr, "%s: %v\n", hex.EncodeToString(pdu), err)
			failed++
			continue
		}
		out, err := access.LoggableJSON(msg, e.projection())
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, string(out))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d PDUs failed to decode", failed, len(inputs))
	}
	return nil
}

func runEncode(_ context.Context, e *env) error {
	if len(e.args) == 0 || len(e.args) > 2 {
		return errors.New("usage: encode <opcode|name> [json params]")
	}
	codec, err := e.codec()
	if err != nil {
		return err
	}

	def, ok := lookup(codec, e.args[0])
	if !ok {
		return fmt.Errorf("unknown message %q", e.args[0])
	}

	params := schema.Container{}
	if len(e.args) == 2 {
		if err := json.Unmarshal([]byte(e.args[1]), &params); err != nil {
			return fmt.Errorf("parse params: %w", err)
		}
	}

	pdu, err := codec.Encode(&access.Message{Name: def.Name, Params: params})
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, hex.EncodeToString(pdu))
	return nil
}

func runOpcodes(_ context.Context, e *env) error {
	codec, err := e.codec()
	if err != nil {
		return err
	}

	var family string
	if len(e.args) > 0 {
		family = e.args[0]
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	for _, def := range codec.Messages() {
		if family != "" && def.Family != family {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Opcode, def.Name, def.Family)
	}
	return tw.Flush()
}

func runSchema(_ context.Context, e *env) error {
	if len(e.args) != 1 {
		return errors.New("usage: schema <opcode|name>")
	}
	codec, err := e.codec()
	if err != nil {
		return err
	}

	def, ok := lookup(codec, e.args[0])
	if !ok {
		return fmt.Errorf("unknown message %q", e.args[0])
	}

	out, err := json.MarshalIndent(map[string]any{
		"opcode": def.Opcode.String(),
		"name":   def.Name,
		"family": def.Family,
		"params": schema.Describe(def.Params),
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, string(out))
	return nil
}

func runServe(ctx context.Context, e *env) error {
	codec, err := e.codec()
	if err != nil {
		return err
	}
	store, err := e.openCapture()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	config := api.DefaultConfig()
	config.Addr = e.opts.HTTPAddr
	config.Codec = codec
	config.Store = store
	config.LoggerFactory = e.loggerFactory()

	server, err := api.NewServer(config)
	if err != nil {
		return err
	}
	return server.Start(ctx)
}

func runListen(ctx context.Context, e *env) error {
	codec, err := e.codec()
	if err != nil {
		return err
	}
	handler, closeCapture, err := e.frameHandler(nil)
	if err != nil {
		return err
	}
	defer closeCapture()

	udp, err := transport.NewUDP(transport.UDPConfig{
		ListenAddr:    e.opts.UDPAddr,
		Codec:         codec,
		FrameHandler:  handler,
		LoggerFactory: e.loggerFactory(),
	})
	if err != nil {
		return err
	}
	if err := udp.Start(); err != nil {
		return err
	}
	fmt.Fprintf(e.stderr, "listening on udp %s\n", udp.LocalAddr())

	<-ctx.Done()
	return udp.Stop()
}

func runBridge(ctx context.Context, e *env) error {
	codec, err := e.codec()
	if err != nil {
		return err
	}

	var bridge *transport.MQTTBridge
	handler, closeCapture, err := e.frameHandler(func(f *transport.Frame) {
		if err := bridge.PublishDecoded(f); err != nil {
			fmt.Fprintf(e.stderr, "publish: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	defer closeCapture()

	bridge, err = transport.NewMQTTBridge(transport.MQTTConfig{
		Broker:        e.opts.Broker,
		ClientID:      e.opts.ClientID,
		Username:      e.opts.Username,
		Password:      e.opts.Password,
		TopicPrefix:   e.opts.TopicPrefix,
		QoS:           e.opts.QoS,
		Codec:         codec,
		FrameHandler:  handler,
		LoggerFactory: e.loggerFactory(),
	})
	if err != nil {
		return err
	}
	if err := bridge.Connect(); err != nil {
		return err
	}
	fmt.Fprintf(e.stderr, "bridging %s on %s\n", bridge.RxTopic(), e.opts.Broker)

	<-ctx.Done()
	return bridge.Close()
}

func runSniff(ctx context.Context, e *env) error {
	codec, err := e.codec()
	if err != nil {
		return err
	}
	handler, closeCapture, err := e.frameHandler(nil)
	if err != nil {
		return err
	}
	defer closeCapture()

	sniffer, err := transport.NewSerial(transport.SerialConfig{
		Port:          e.opts.SerialPort,
		BaudRate:      e.opts.BaudRate,
		Codec:         codec,
		FrameHandler:  handler,
		LoggerFactory: e.loggerFactory(),
	})
	if err != nil {
		return err
	}
	if err := sniffer.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	if err := sniffer.Close(); err != nil && !errors.Is(err, transport.ErrClosed) {
		return err
	}
	return nil
}

// frameHandler prints every frame, records it when capture is configured
// and then calls next. The returned func closes the capture store.
func (e *env) frameHandler(next transport.FrameHandler) (transport.FrameHandler, func(), error) {
	var mu sync.Mutex
	handler := func(f *transport.Frame) {
		mu.Lock()
		printFrame(e.stdout, f, e.projection())
		mu.Unlock()
		if next != nil {
			next(f)
		}
	}

	store, err := e.openCapture()
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return handler, func() {}, nil
	}
	return store.Handler(handler), func() { store.Close() }, nil
}

func printFrame(w io.Writer, f *transport.Frame, opts access.ProjectionOptions) {
	if f.Err != nil {
		fmt.Fprintf(w, "%s %s error: %v\n", f.PeerAddr, hex.EncodeToString(f.Data), f.Err)
		return
	}
	out, err := access.LoggableJSON(f.Message, opts)
	if err != nil {
		fmt.Fprintf(w, "%s %s error: %v\n", f.PeerAddr, hex.EncodeToString(f.Data), err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", f.PeerAddr, out)
}

// lookup resolves a message name (any case) or a hex opcode.
func lookup(codec *access.Codec, key string) (access.Definition, bool) {
	if def, ok := codec.Lookup(strings.ToUpper(key)); ok {
		return def, true
	}
	op, err := opcode.Parse(key)
	if err != nil {
		return access.Definition{}, false
	}
	return codec.Definition(op)
}
