package transport

import (
	"fmt"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/pion/transport/v3/test"
)

// LinkCondition configures impairments applied to every datagram written to
// a Pipe.
type LinkCondition struct {
	// DropRate is the probability of dropping a datagram (0.0 - 1.0).
	DropRate float64

	// Delay is added before each datagram is queued.
	Delay time.Duration
}

// Pipe is an in-memory datagram link between two endpoints, built on pion's
// test.Bridge. Datagrams are delivered by a background goroutine.
//
// Use it to run a UDP transport against a peer without a real socket.
type Pipe struct {
	bridge *test.Bridge

	mu        sync.RWMutex
	condition LinkCondition
	rng       *rand.Rand
	closed    bool
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewPipe creates a Pipe that delivers queued datagrams every interval.
// A zero interval means 1ms.
func NewPipe(interval time.Duration) *Pipe {
	if interval == 0 {
		interval = time.Millisecond
	}
	p := &Pipe{
		bridge: test.NewBridge(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		stopCh: make(chan struct{}),
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopCh:
				return
			case <-ticker.C:
				p.bridge.Tick()
			}
		}
	}()

	return p
}

// SetCondition replaces the link impairments.
func (p *Pipe) SetCondition(cond LinkCondition) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.condition = cond
}

// Endpoint returns endpoint id (0 or 1) as a net.PacketConn.
func (p *Pipe) Endpoint(id int) net.PacketConn {
	conn, peer := p.bridge.GetConn0(), PipeAddr{ID: 1}
	if id != 0 {
		conn, peer = p.bridge.GetConn1(), PipeAddr{ID: 0}
	}
	return &pipeConn{conn: conn, local: PipeAddr{ID: id}, peer: peer, pipe: p}
}

// Close stops delivery and closes both endpoints.
func (p *Pipe) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.stopCh)
	p.mu.Unlock()

	p.wg.Wait()

	err0 := p.bridge.GetConn0().Close()
	err1 := p.bridge.GetConn1().Close()
	if err0 != nil {
		return err0
	}
	return err1
}

// drop applies the link condition to one datagram and reports whether it
// should be discarded.
func (p *Pipe) drop() bool {
	p.mu.RLock()
	cond := p.condition
	p.mu.RUnlock()

	if cond.Delay > 0 {
		time.Sleep(cond.Delay)
	}
	if cond.DropRate <= 0 {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < cond.DropRate
}

// PipeAddr implements net.Addr for pipe endpoints.
type PipeAddr struct {
	ID int
}

// Network returns "pipe".
func (a PipeAddr) Network() string { return "pipe" }

func (a PipeAddr) String() string { return fmt.Sprintf("pipe:%d", a.ID) }

type pipeConn struct {
	conn  net.Conn
	local PipeAddr
	peer  PipeAddr
	pipe  *Pipe
}

// ReadFrom reports the other endpoint as the sender.
func (c *pipeConn) ReadFrom(b []byte) (int, net.Addr, error) {
	n, err := c.conn.Read(b)
	return n, c.peer, err
}

// WriteTo ignores addr: a pipe has a single peer.
func (c *pipeConn) WriteTo(b []byte, addr net.Addr) (int, error) {
	if c.pipe.drop() {
		return len(b), nil
	}
	return c.conn.Write(b)
}

func (c *pipeConn) Close() error                       { return c.conn.Close() }
func (c *pipeConn) LocalAddr() net.Addr                { return c.local }
func (c *pipeConn) SetDeadline(t time.Time) error      { return c.conn.SetDeadline(t) }
func (c *pipeConn) SetReadDeadline(t time.Time) error  { return c.conn.SetReadDeadline(t) }
func (c *pipeConn) SetWriteDeadline(t time.Time) error { return c.conn.SetWriteDeadline(t) }

var _ net.PacketConn = (*pipeConn)(nil)
