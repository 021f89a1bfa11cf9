package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/hydraide/fmutex"
	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/holder"
	"github.com/spf13/cobra"
)

var (
	runFile   string
	runName   string
	runNoWait bool
)

// errHeld marks the contention exit path of a --no-wait run.
var errHeld = errors.New("lock is held by another process")

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Run a command while holding the lock for a target",
	Long: `Acquires the exclusive lock for a target, executes the given command while
holding it, and releases the lock when the command finishes.

By default run waits until the lock becomes available. With --no-wait the
command is not executed if another process holds the lock, and run exits
with code 2 so scripts can branch on contention.

The command's own exit code is propagated.

Exit codes:
  0 - Command ran and exited 0 (other codes are passed through)
  1 - Invalid target or usage
  2 - Lock held by another process (--no-wait only)
  3 - Internal failure`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target, err := resolveTarget(runFile, runName)
		if err != nil {
			fmt.Println("❌ Error:", err)
			os.Exit(1)
		}

		code, err := runLocked(target, args)
		if err != nil {
			if errors.Is(err, errHeld) {
				fmt.Printf("🔒 %s is locked by another process. Nothing was run.\n", target)
				os.Exit(2)
			}
			fmt.Println("❌ Error:", err)
			os.Exit(3)
		}
		os.Exit(code)
	},
}

// runLocked acquires the lock, runs the command, and releases the lock on
// every exit path. It returns the child's exit code.
func runLocked(target string, args []string) (int, error) {
	logger := slog.With("target", target, "pid", os.Getpid())

	var (
		g   *fmutex.Guard
		err error
	)
	if runNoWait {
		g, err = fmutex.TryLock(target)
		if err != nil {
			return 0, err
		}
		if g == nil {
			return 0, errHeld
		}
	} else {
		logger.Debug("waiting for lock")
		g, err = fmutex.Lock(target)
		if err != nil {
			return 0, err
		}
	}
	logger.Info("lock acquired")

	defer func() {
		if err := holder.Remove(target); err != nil {
			logger.Warn("failed to remove holder info", "error", err)
		}
		if err := g.Unlock(); err != nil {
			logger.Warn("failed to release lock", "error", err)
		} else {
			logger.Info("lock released")
		}
	}()

	// Best effort: the sidecar is operator information, not part of the
	// exclusion protocol.
	if err := holder.Write(target, holder.New(strings.Join(args, " "))); err != nil {
		logger.Warn("failed to write holder info", "error", err)
	}

	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	err = child.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Info("command finished", "exit", exitErr.ExitCode())
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("failed to run command: %w", err)
	}

	logger.Info("command finished", "exit", 0)
	return 0, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "Lock an explicit file path")
	runCmd.Flags().StringVarP(&runName, "name", "n", "", "Lock a named resource in the system lock directory")
	runCmd.Flags().BoolVar(&runNoWait, "no-wait", false, "Fail with exit code 2 instead of waiting when the lock is held")
}
