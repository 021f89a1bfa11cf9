package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "fmutexctl",
	Short:   "fmutex control CLI",
	Version: Version,
	Long: `
fmutexctl – run and inspect commands guarded by exclusive file locks.

A lock target is either an explicit file path (--file) or a named resource
(--name) whose lock file lives in the system lock directory. Locks are
advisory: they coordinate cooperating fmutex users, nothing else.

COMMANDS:
  run         Run a command while holding the lock for a target
  status      Show whether a target is currently locked, and by whom
  list        List lock files in the system lock directory
  clean       Remove the lock file of a free named resource
  version     Display CLI version information

EXAMPLES:
  fmutexctl run --name nightly-sync -- rsync -a /src /dst
  fmutexctl run --file /tmp/x.lock --no-wait -- make deploy
  fmutexctl status --name nightly-sync
  fmutexctl list
  fmutexctl clean --name nightly-sync
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env next to the CLI may override FMUTEX_LOCK_DIR and LOG_LEVEL
		_ = godotenv.Load()
		configureLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Disable Cobra's automatic "completion" command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// Set the version - needs to be done in init() because Version is set via ldflags
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("fmutexctl {{.Version}}\n")
}

// configureLogging sets the default slog level from LOG_LEVEL. Lifecycle
// logs default to warn so normal command output stays clean.
func configureLogging() {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
