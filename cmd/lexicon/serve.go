package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lexicon/internal/config"
	"github.com/vovakirdan/lexicon/internal/games/lexicon"
	"github.com/vovakirdan/lexicon/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServePack   string
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Lexicon SSH server",
	Long: `Start an SSH server that drops every connection straight into a session.

All players share one leaderboard and one best score. Sound is server-side,
so SSH sessions play silently.

Defaults come from the environment (a .env file in the working directory is
loaded first); flags override them:

  LEXICON_SSH_ADDR          listen address (default :2222)
  LEXICON_SSH_HOST_KEY      host key path (default ~/.lexicon/ssh_host_ed25519)
  LEXICON_SSH_IDLE_TIMEOUT  idle timeout (default 10m)
  LEXICON_SSH_MAX_TIMEOUT   maximum connection length (default 2h)
  LEXICON_DB                scores database (default: --db)

Examples:
  lexicon serve
  lexicon serve --ssh :2323 --host-key ./host_key

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServePack, "pack", "", "Word pack ID served to every session")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "lexicon-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	env, err := config.LoadServeEnv()
	if err != nil {
		return err
	}

	gameCfg, pack, err := loadSettings(flagServeConfig, "", flagServePack)
	if err != nil {
		return err
	}
	lexicon.Configure(gameCfg, pack)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = env.Addr
	cfg.HostKeyPath = env.HostKeyPath
	cfg.IdleTimeout = env.IdleTimeout
	cfg.MaxTimeout = env.MaxTimeout
	cfg.TickRate = flagFPS
	cfg.DBPath = flagDBPath
	if env.DBPath != "" && !cmd.Flags().Changed("db") {
		cfg.DBPath = env.DBPath
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Lexicon SSH server on %s (pack %s)\n", cfg.Address, pack.ID)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
