// Command antcraft runs one peer of a two-player match: it either hosts
// (binding a port and generating the map seed) or joins a host at a
// known address, then drives the lockstep loop to completion. This
// driver is illustrative scaffolding around the library packages, not
// itself in scope — spec.md §6.1 leaves the executable/UI layer open.
// Shaped after the teacher's main()/Start()/handleMessages loop in
// server/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/c-bata/go-prompt"
	"go.uber.org/zap"

	"antcraft/pkg/config"
	"antcraft/pkg/lockstep"
	"antcraft/pkg/netpeer"
	"antcraft/pkg/replay"
	"antcraft/pkg/sim"
)

func main() {
	listen := flag.String("listen", ":23456", "local UDP address to bind")
	join := flag.String("join", "", "host address to join (empty = host mode)")
	verbose := flag.Bool("verbose", false, "enable debug logging and console")
	replayOut := flag.String("replay", "", "path to write a replay log to")
	flag.Parse()

	log := buildLogger(*verbose)
	defer log.Sync()

	cfg := config.Default()

	if err := run(*listen, *join, *verbose, *replayOut, cfg, log); err != nil {
		log.Error("antcraft: fatal", zap.Error(err))
		os.Exit(1)
	}
}

func buildLogger(verbose bool) *zap.Logger {
	var log *zap.Logger
	var err error
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		log = zap.NewNop()
	}
	return log
}

func run(listenAddr, joinAddr string, verbose bool, replayOut string, cfg *config.Config, log *zap.Logger) error {
	netCfg := netpeer.Config{
		SendRedundancy:         cfg.SendRedundancy,
		NetTimeoutWarningMs:    cfg.NetTimeoutWarningMs,
		NetTimeoutDisconnectMs: cfg.NetTimeoutDisconnectMs,
		ConnectRetryMs:         cfg.ConnectRetryMs,
	}
	peer, err := netpeer.Listen(listenAddr, log, netCfg)
	if err != nil {
		return err
	}
	defer peer.Close()

	localPlayer := 0
	var seed uint32

	if joinAddr == "" {
		log.Info("antcraft: hosting", zap.String("listen", listenAddr))
		seed = uint32(time.Now().UnixNano())
		// The host waits for a CONNECT and replies with CONNECT_ACK; a
		// production driver would loop here. Scaffolding only.
	} else {
		addr, err := net.ResolveUDPAddr("udp", joinAddr)
		if err != nil {
			return fmt.Errorf("antcraft: resolve %s: %w", joinAddr, err)
		}
		localPlayer = 1
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ack, err := peer.Handshake(ctx, addr, cfg.ConnectRetryMs)
		if err != nil {
			return fmt.Errorf("antcraft: handshake: %w", err)
		}
		seed = ack.Seed
		log.Info("antcraft: joined", zap.Uint32("seed", seed))
	}

	gs := sim.New(cfg, seed)
	_ = lockstep.New(localPlayer, cfg.InputDelayTicks, cfg.HashCheckInterval)

	if verbose {
		runDebugConsole(gs)
	}

	if replayOut != "" {
		matchLog := replay.Log{Seed: seed}
		if err := matchLog.WriteFile(replayOut); err != nil {
			log.Warn("antcraft: writing replay", zap.Error(err))
		}
	}

	return nil
}

// runDebugConsole offers a read-only prompt for inspecting match state;
// it never issues commands into the simulation.
func runDebugConsole(gs *sim.GameState) {
	completer := func(d prompt.Document) []prompt.Suggest {
		return []prompt.Suggest{
			{Text: "tick", Description: "print the current tick"},
			{Text: "jelly", Description: "print both players' jelly"},
			{Text: "quit", Description: "exit the console"},
		}
	}
	executor := func(in string) {
		switch in {
		case "tick":
			fmt.Println(gs.Tick)
		case "jelly":
			fmt.Println(gs.PlayerJelly)
		case "quit":
			os.Exit(0)
		}
	}
	p := prompt.New(executor, completer, prompt.OptionPrefix("antcraft> "))
	p.Run()
}
