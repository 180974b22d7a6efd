package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live viewer over SSH",
	Long: `Start an SSH server that drops each connecting client into the live
viewer. Every session gets its own simulation, and finished sessions
are recorded in the run history.

Connect with:
  ssh -p 23234 localhost

Examples:
  life serve
  life serve --ssh :2222 --idle-timeout 10m`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key path (default: ~/.life/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})

	sim, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddress
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.Sim = sim

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		logger.Fatal("cannot create SSH server", "error", err)
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
