// Package wire implements the UDP datagram framing and payload codecs
// for the five message kinds spec.md §4.8 makes authoritative. Grounded
// on protocol.py/serialization.py, narrowed to the kinds the spec
// actually requires — protocol.py additionally defines TICK_ACK and
// DESYNC, which spec.md reserves rather than mandates, so this package
// does not implement them.
package wire

import (
	"encoding/binary"
	"errors"
)

// Kind identifies the payload layout that follows the frame header.
type Kind uint8

const (
	Connect Kind = iota + 1
	ConnectAck
	Commands
	HashCheck
	Disconnect
)

// headerLen is [msg_type:u8][payload_len:u16 BE].
const headerLen = 3

var ErrShortFrame = errors.New("wire: frame shorter than header")
var ErrTruncated = errors.New("wire: payload shorter than declared length")

// Frame encodes one message: the header for kind and len(payload),
// followed by the payload bytes.
func Frame(kind Kind, payload []byte) []byte {
	out := make([]byte, headerLen+len(payload))
	out[0] = byte(kind)
	binary.BigEndian.PutUint16(out[1:3], uint16(len(payload)))
	copy(out[3:], payload)
	return out
}

// ParseFrame reads one frame from the front of buf, returning the kind,
// payload, and how many bytes were consumed. A UDP datagram holds
// exactly one frame, but ParseFrame doesn't assume that — callers over a
// stream transport could loop it.
func ParseFrame(buf []byte) (kind Kind, payload []byte, consumed int, err error) {
	if len(buf) < headerLen {
		return 0, nil, 0, ErrShortFrame
	}
	k := Kind(buf[0])
	n := binary.BigEndian.Uint16(buf[1:3])
	if len(buf) < headerLen+int(n) {
		return 0, nil, 0, ErrTruncated
	}
	return k, buf[headerLen : headerLen+int(n)], headerLen + int(n), nil
}
