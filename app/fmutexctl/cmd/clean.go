package cmd

import (
	"fmt"
	"os"

	"github.com/hydraide/fmutex"
	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/holder"
	"github.com/spf13/cobra"
)

var cleanName string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the lock file of a free named resource",
	Long: `Removes the lock file and holder sidecar of a named resource from the
system lock directory. The lock file is an ordinary file that fmutex never
deletes on release, so freed resources accumulate files until cleaned.

clean refuses to touch a resource whose lock is currently held.

Exit codes:
  0 - Lock file removed (or never existed)
  1 - Invalid name or usage
  2 - Lock is currently held
  3 - Internal failure`,
	Run: func(cmd *cobra.Command, args []string) {
		target, err := resolveTarget("", cleanName)
		if err != nil {
			fmt.Println("❌ Error:", err)
			os.Exit(1)
		}

		if _, err := os.Stat(target); os.IsNotExist(err) {
			fmt.Printf("🟢 No lock file for \"%s\". Nothing to do.\n", cleanName)
			return
		}

		// Holding the lock ourselves while deleting closes the window in
		// which another process could acquire on the doomed file.
		g, err := fmutex.TryLock(target)
		if err != nil {
			fmt.Println("❌ Error:", err)
			os.Exit(3)
		}
		if g == nil {
			fmt.Printf("🔒 \"%s\" is currently held. Refusing to remove its lock file.\n", cleanName)
			os.Exit(2)
		}

		removeErr := os.Remove(target)
		sidecarErr := holder.Remove(target)
		_ = g.Unlock()

		if removeErr != nil {
			fmt.Println("❌ Failed to remove lock file:", removeErr)
			os.Exit(3)
		}
		if sidecarErr != nil {
			fmt.Println("❌ Failed to remove holder info:", sidecarErr)
			os.Exit(3)
		}

		fmt.Printf("✅ Lock file for \"%s\" removed.\n", cleanName)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVarP(&cleanName, "name", "n", "", "Name of the resource to clean up")
	if err := cleanCmd.MarkFlagRequired("name"); err != nil {
		fmt.Println("Error marking 'name' flag as required:", err)
		os.Exit(1)
	}
}
