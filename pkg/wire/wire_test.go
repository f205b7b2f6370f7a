package wire

import (
	"bytes"
	"testing"

	"antcraft/pkg/command"
)

func TestFrameRoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	frame := Frame(HashCheck, payload)

	kind, got, consumed, err := ParseFrame(frame)
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if kind != HashCheck {
		t.Fatalf("got kind %v, want HashCheck", kind)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got payload %v, want %v", got, payload)
	}
	if consumed != len(frame) {
		t.Fatalf("consumed %d, want %d", consumed, len(frame))
	}
}

func TestParseFrameTruncated(t *testing.T) {
	frame := Frame(Commands, []byte{1, 2, 3, 4, 5})
	if _, _, _, err := ParseFrame(frame[:len(frame)-2]); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestConnectRoundTrip(t *testing.T) {
	p := ConnectPayload{ProtocolVersion: ProtocolVersion}
	got, err := DecodeConnect(p.Encode())
	if err != nil || got != p {
		t.Fatalf("got %+v err=%v, want %+v", got, err, p)
	}
}

func TestConnectAckRoundTrip(t *testing.T) {
	p := ConnectAckPayload{Seed: 0xDEADBEEF, AssignedPlayer: 1}
	got, err := DecodeConnectAck(p.Encode())
	if err != nil || got != p {
		t.Fatalf("got %+v err=%v, want %+v", got, err, p)
	}
}

func TestHashCheckRoundTrip(t *testing.T) {
	p := HashCheckPayload{Tick: 42}
	for i := range p.Hash {
		p.Hash[i] = byte(i)
	}
	got, err := DecodeHashCheck(p.Encode())
	if err != nil || got != p {
		t.Fatalf("got %+v err=%v, want %+v", got, err, p)
	}
}

func TestCommandsRoundTrip(t *testing.T) {
	p := CommandsPayload{
		Tick: 7,
		Commands: []command.Command{
			command.New(command.Move, 0, 7, []int{3, 1, 2}, 5000, 6000, command.None),
			command.New(command.Attack, 1, 7, []int{9}, 0, 0, 42),
		},
	}
	decoded, err := DecodeCommands(p.Encode())
	if err != nil {
		t.Fatalf("DecodeCommands: %v", err)
	}
	if decoded.Tick != p.Tick || len(decoded.Commands) != len(p.Commands) {
		t.Fatalf("got %+v, want %+v", decoded, p)
	}
	for i := range p.Commands {
		if !decoded.Commands[i].Equal(p.Commands[i]) {
			t.Fatalf("command %d: got %+v, want %+v", i, decoded.Commands[i], p.Commands[i])
		}
	}
}

func TestDisconnectRoundTrip(t *testing.T) {
	p := DisconnectPayload{Reason: DisconnectReasonTimeout}
	got, err := DecodeDisconnect(p.Encode())
	if err != nil || got != p {
		t.Fatalf("got %+v err=%v, want %+v", got, err, p)
	}
}
