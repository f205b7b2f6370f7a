package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"antcraft/pkg/command"
)

// ProtocolVersion is bumped whenever a payload layout changes in a way
// that is not backward compatible.
const ProtocolVersion = 1

// ConnectPayload is sent by the joining peer. SessionID tags the match
// attempt so a host that has already accepted one joiner can recognize
// and discard a retransmitted CONNECT from the same joiner rather than
// starting a second match.
type ConnectPayload struct {
	ProtocolVersion uint8
	SessionID       uuid.UUID
}

func (p ConnectPayload) Encode() []byte {
	b := make([]byte, 1+16)
	b[0] = p.ProtocolVersion
	copy(b[1:], p.SessionID[:])
	return b
}

func DecodeConnect(b []byte) (ConnectPayload, error) {
	if len(b) != 17 {
		return ConnectPayload{}, fmt.Errorf("wire: CONNECT payload: want 17 bytes, got %d", len(b))
	}
	p := ConnectPayload{ProtocolVersion: b[0]}
	copy(p.SessionID[:], b[1:17])
	return p, nil
}

// ConnectAckPayload is sent by the host in reply: the map seed and which
// player slot (0 or 1) the joiner was assigned.
type ConnectAckPayload struct {
	Seed           uint32
	AssignedPlayer uint8
}

func (p ConnectAckPayload) Encode() []byte {
	b := make([]byte, 5)
	binary.BigEndian.PutUint32(b[0:4], p.Seed)
	b[4] = p.AssignedPlayer
	return b
}

func DecodeConnectAck(b []byte) (ConnectAckPayload, error) {
	if len(b) != 5 {
		return ConnectAckPayload{}, fmt.Errorf("wire: CONNECT_ACK payload: want 5 bytes, got %d", len(b))
	}
	return ConnectAckPayload{
		Seed:           binary.BigEndian.Uint32(b[0:4]),
		AssignedPlayer: b[4],
	}, nil
}

// CommandsPayload carries every command one player issued for one tick.
type CommandsPayload struct {
	Tick     uint32
	Commands []command.Command
}

const commandFixedLen = 1 + 1 + 4 + 2 + 4 + 4 + 4 // kind,player,tick,idcount,targetX,targetY,targetEntity

func (p CommandsPayload) Encode() []byte {
	size := 4 + 2
	for _, c := range p.Commands {
		size += commandFixedLen + 4*len(c.EntityIDs)
	}
	b := make([]byte, size)
	binary.BigEndian.PutUint32(b[0:4], p.Tick)
	binary.BigEndian.PutUint16(b[4:6], uint16(len(p.Commands)))
	off := 6
	for _, c := range p.Commands {
		b[off] = byte(c.Kind)
		b[off+1] = byte(c.Player)
		binary.BigEndian.PutUint32(b[off+2:off+6], uint32(c.Tick))
		binary.BigEndian.PutUint16(b[off+6:off+8], uint16(len(c.EntityIDs)))
		off += 8
		for _, id := range c.EntityIDs {
			binary.BigEndian.PutUint32(b[off:off+4], uint32(int32(id)))
			off += 4
		}
		binary.BigEndian.PutUint32(b[off:off+4], uint32(int32(c.TargetX)))
		binary.BigEndian.PutUint32(b[off+4:off+8], uint32(int32(c.TargetY)))
		binary.BigEndian.PutUint32(b[off+8:off+12], uint32(int32(c.TargetEntity)))
		off += 12
	}
	return b
}

func DecodeCommands(b []byte) (CommandsPayload, error) {
	if len(b) < 6 {
		return CommandsPayload{}, fmt.Errorf("wire: COMMANDS payload too short: %d bytes", len(b))
	}
	p := CommandsPayload{Tick: binary.BigEndian.Uint32(b[0:4])}
	count := binary.BigEndian.Uint16(b[4:6])
	off := 6
	for i := 0; i < int(count); i++ {
		if off+8 > len(b) {
			return CommandsPayload{}, fmt.Errorf("wire: COMMANDS payload truncated at command %d header", i)
		}
		kind := command.Kind(b[off])
		player := int(b[off+1])
		tick := int(binary.BigEndian.Uint32(b[off+2 : off+6]))
		idCount := int(binary.BigEndian.Uint16(b[off+6 : off+8]))
		off += 8
		if off+4*idCount+12 > len(b) {
			return CommandsPayload{}, fmt.Errorf("wire: COMMANDS payload truncated at command %d body", i)
		}
		ids := make([]int, idCount)
		for j := 0; j < idCount; j++ {
			ids[j] = int(int32(binary.BigEndian.Uint32(b[off : off+4])))
			off += 4
		}
		tx := int(int32(binary.BigEndian.Uint32(b[off : off+4])))
		ty := int(int32(binary.BigEndian.Uint32(b[off+4 : off+8])))
		te := int(int32(binary.BigEndian.Uint32(b[off+8 : off+12])))
		off += 12
		p.Commands = append(p.Commands, command.New(kind, player, tick, ids, tx, ty, te))
	}
	return p, nil
}

// HashCheckPayload carries the digest a peer computed at a given tick,
// for the other peer to compare against its own — spec.md §4.8/§4.9.
type HashCheckPayload struct {
	Tick uint32
	Hash [32]byte
}

func (p HashCheckPayload) Encode() []byte {
	b := make([]byte, 4+32)
	binary.BigEndian.PutUint32(b[0:4], p.Tick)
	copy(b[4:], p.Hash[:])
	return b
}

func DecodeHashCheck(b []byte) (HashCheckPayload, error) {
	if len(b) != 36 {
		return HashCheckPayload{}, fmt.Errorf("wire: HASH_CHECK payload: want 36 bytes, got %d", len(b))
	}
	p := HashCheckPayload{Tick: binary.BigEndian.Uint32(b[0:4])}
	copy(p.Hash[:], b[4:36])
	return p, nil
}

// DisconnectPayload carries a reason code for a clean shutdown.
type DisconnectPayload struct {
	Reason uint8
}

const (
	DisconnectReasonUser uint8 = iota
	DisconnectReasonDesync
	DisconnectReasonTimeout
)

func (p DisconnectPayload) Encode() []byte { return []byte{p.Reason} }

func DecodeDisconnect(b []byte) (DisconnectPayload, error) {
	if len(b) != 1 {
		return DisconnectPayload{}, fmt.Errorf("wire: DISCONNECT payload: want 1 byte, got %d", len(b))
	}
	return DisconnectPayload{Reason: b[0]}, nil
}
