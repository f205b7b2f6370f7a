// Package replay writes and reads the append-only match log: the map
// seed plus every tick's canonically-ordered command list, per spec.md
// §6.5. This is deliberately not a save-game format — it records inputs,
// not entity state, so replaying it means re-running the deterministic
// simulation from scratch.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"antcraft/pkg/command"
)

// TickEntry is one tick's worth of commands, in the order they executed.
type TickEntry struct {
	Tick     int               `yaml:"tick"`
	Commands []command.Command `yaml:"commands"`
}

// Log is the full record of one match.
type Log struct {
	Seed  uint32      `yaml:"seed"`
	Ticks []TickEntry `yaml:"ticks"`
}

// Append records one executed tick's commands onto the log.
func (l *Log) Append(tick int, cmds []command.Command) {
	l.Ticks = append(l.Ticks, TickEntry{Tick: tick, Commands: append([]command.Command(nil), cmds...)})
}

// WriteFile serializes the log to path as YAML.
func (l *Log) WriteFile(path string) error {
	b, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("replay: marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a replay log previously written by WriteFile.
func ReadFile(path string) (*Log, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	var l Log
	if err := yaml.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("replay: unmarshal %s: %w", path, err)
	}
	return &l, nil
}
