package transport

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/mesh"
	"github.com/backkem/btmesh/pkg/schema"
)

// fakeLine is an in-memory serial line. Reads come from the pipe and
// writes are collected.
type fakeLine struct {
	*io.PipeReader

	mu  sync.Mutex
	out bytes.Buffer
}

func (l *fakeLine) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Write(p)
}

func (l *fakeLine) written() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.String()
}

func newFakeLine() (*fakeLine, *io.PipeWriter) {
	r, w := io.Pipe()
	return &fakeLine{PipeReader: r}, w
}

func TestNewSerial(t *testing.T) {
	handler := func(*Frame) {}

	_, err := NewSerial(SerialConfig{Codec: mesh.DefaultCodec(), FrameHandler: handler})
	assert.ErrorIs(t, err, ErrMissingConfig)

	_, err = NewSerial(SerialConfig{Port: "/dev/null", FrameHandler: handler})
	assert.ErrorIs(t, err, ErrNoCodec)

	_, err = NewSerial(SerialConfig{Port: "/dev/null", Codec: mesh.DefaultCodec()})
	assert.ErrorIs(t, err, ErrNoHandler)

	s, err := NewSerial(SerialConfig{Port: "/dev/ttyACM0", Codec: mesh.DefaultCodec(), FrameHandler: handler})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaudRate, s.config.BaudRate)
}

func TestSerialRead(t *testing.T) {
	line, w := newFakeLine()
	frames := make(chan *Frame, 8)

	s, err := NewSerial(SerialConfig{
		Conn:         line,
		Codec:        mesh.DefaultCodec(),
		FrameHandler: func(f *Frame) { frames <- f },
	})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	assert.ErrorIs(t, s.Start(context.Background()), ErrAlreadyStarted)

	go func() {
		_, _ = io.WriteString(w, "# sniffer v1\n\n8206 ff7f 22\r\nzz\n82\n")
	}()

	f := receive(t, frames)
	require.NoError(t, f.Err)
	assert.Equal(t, "GENERIC_LEVEL_SET", f.Message.Name)
	assert.Equal(t, "serial:serial", f.PeerAddr.String())

	f = receive(t, frames)
	assert.ErrorIs(t, f.Err, schema.ErrTruncatedInput)
	assert.Equal(t, []byte{0x82}, f.Data)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Close(), ErrClosed)
	assert.Empty(t, frames)
}

func TestSerialWritePDU(t *testing.T) {
	line, _ := newFakeLine()

	s, err := NewSerial(SerialConfig{
		Conn:         line,
		Codec:        mesh.DefaultCodec(),
		FrameHandler: func(*Frame) {},
	})
	require.NoError(t, err)

	msg := &access.Message{Name: "GENERIC_LEVEL_SET", Params: schema.Container{"level": 32767, "tid": 34}}
	assert.ErrorIs(t, s.WritePDU(msg), ErrNotStarted)

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.WritePDU(msg))
	assert.Equal(t, "8206ff7f22\n", line.written())

	assert.ErrorIs(t, s.WritePDU(&access.Message{Name: "NOPE"}), access.ErrUnknownName)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.WritePDU(msg), ErrClosed)
}

func TestSerialContextCancel(t *testing.T) {
	line, _ := newFakeLine()

	s, err := NewSerial(SerialConfig{
		Conn:         line,
		Codec:        mesh.DefaultCodec(),
		FrameHandler: func(*Frame) {},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, s.isClosed, time.Second, 10*time.Millisecond)
}

func receive(t *testing.T, ch <-chan *Frame) *Frame {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for frame")
		return nil
	}
}
