// Package netpeer is the UDP transport between the two match peers: a
// non-blocking read loop, redundancy-based sends, the CONNECT handshake,
// and timeout-driven disconnect detection. Grounded on udp_peer.py and
// the teacher's non-blocking socket read loop in server/main.go.
package netpeer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"antcraft/pkg/wire"
)

// Peer is a single point-to-point UDP connection to the other player.
// There is no server: both sides run the identical Peer type, one of
// them just generates the map seed (the "host").
type Peer struct {
	conn *net.UDPConn
	log  *zap.Logger

	redundancy int

	lastRecv  time.Time
	warnAfter time.Duration
	deadAfter time.Duration

	dedup map[dedupKey]struct{}
}

type dedupKey struct {
	tick uint32
	kind wire.Kind
}

// Config bundles the tunables netpeer needs out of the balance config,
// so this package doesn't import pkg/config and create a dependency
// cycle risk as the module grows.
type Config struct {
	SendRedundancy         int
	NetTimeoutWarningMs    int
	NetTimeoutDisconnectMs int
	ConnectRetryMs         int
}

// Listen opens a UDP socket bound to localAddr. It does not contact any
// peer; a joining side calls Handshake on the returned Peer.
func Listen(localAddr string, log *zap.Logger, cfg Config) (*Peer, error) {
	addr, err := net.ResolveUDPAddr("udp", localAddr)
	if err != nil {
		return nil, fmt.Errorf("netpeer: resolve %s: %w", localAddr, err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("netpeer: listen %s: %w", localAddr, err)
	}
	return &Peer{
		conn:       conn,
		log:        log,
		redundancy: cfg.SendRedundancy,
		lastRecv:   time.Now(),
		warnAfter:  time.Duration(cfg.NetTimeoutWarningMs) * time.Millisecond,
		deadAfter:  time.Duration(cfg.NetTimeoutDisconnectMs) * time.Millisecond,
		dedup:      make(map[dedupKey]struct{}),
	}, nil
}

// Send transmits one frame to remote, repeated redundancy times — the
// protocol's only reliability mechanism. The receiver is expected to
// dedup by (tick, kind) so retransmission never double-applies a
// message, per spec.md §4.8.
func (p *Peer) Send(remote *net.UDPAddr, kind wire.Kind, payload []byte) error {
	frame := wire.Frame(kind, payload)
	var errs error
	for i := 0; i < p.redundancy; i++ {
		if _, err := p.conn.WriteToUDP(frame, remote); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Received is one decoded, de-duplicated inbound frame.
type Received struct {
	Kind    wire.Kind
	Payload []byte
	From    *net.UDPAddr
}

// Poll does one non-blocking read attempt. It returns ok=false with a
// nil error when nothing was waiting, matching the teacher's
// non-blocking handleMessages loop shape (server/main.go).
func (p *Peer) Poll(tickForDedup uint32) (Received, bool, error) {
	p.conn.SetReadDeadline(time.Now().Add(time.Millisecond))
	buf := make([]byte, 2048)
	n, from, err := p.conn.ReadFromUDP(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return Received{}, false, nil
		}
		return Received{}, false, err
	}
	p.lastRecv = time.Now()

	kind, payload, _, ferr := wire.ParseFrame(buf[:n])
	if ferr != nil {
		p.log.Warn("netpeer: dropping malformed frame", zap.Error(ferr))
		return Received{}, false, nil
	}

	key := dedupKey{tick: tickForDedup, kind: kind}
	if _, seen := p.dedup[key]; seen {
		p.log.Debug("netpeer: dropping redundant retransmit",
			zap.Uint64("fingerprint", xxhash.Sum64(payload)))
		return Received{}, false, nil
	}
	p.dedup[key] = struct{}{}

	return Received{Kind: kind, Payload: append([]byte(nil), payload...), From: from}, true, nil
}

// TimeoutState reports whether the connection should warn or be torn
// down, based on time since the last received datagram.
type TimeoutState int

const (
	TimeoutNone TimeoutState = iota
	TimeoutWarn
	TimeoutDead
)

func (p *Peer) TimeoutState() TimeoutState {
	since := time.Since(p.lastRecv)
	switch {
	case since >= p.deadAfter:
		return TimeoutDead
	case since >= p.warnAfter:
		return TimeoutWarn
	default:
		return TimeoutNone
	}
}

// Close releases the socket.
func (p *Peer) Close() error { return p.conn.Close() }

// Handshake performs the CONNECT / CONNECT_ACK exchange from the joining
// side, retrying with backoff via go-retry until the host replies or ctx
// is done.
func (p *Peer) Handshake(ctx context.Context, remote *net.UDPAddr, retryMs int) (wire.ConnectAckPayload, error) {
	backoff := retry.NewConstant(time.Duration(retryMs) * time.Millisecond)
	var ack wire.ConnectAckPayload
	session := uuid.New()

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		connect := wire.ConnectPayload{ProtocolVersion: wire.ProtocolVersion, SessionID: session}
		if err := p.Send(remote, wire.Connect, connect.Encode()); err != nil {
			return retry.RetryableError(err)
		}
		recv, ok, err := p.Poll(0)
		if err != nil {
			return retry.RetryableError(err)
		}
		if !ok || recv.Kind != wire.ConnectAck {
			return retry.RetryableError(fmt.Errorf("netpeer: no CONNECT_ACK yet"))
		}
		a, err := wire.DecodeConnectAck(recv.Payload)
		if err != nil {
			return err
		}
		ack = a
		return nil
	})
	return ack, err
}
