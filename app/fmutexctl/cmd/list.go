package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/lockdir"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List lock files in the system lock directory",
	Long: `Lists every lock file in the system lock directory together with its
current state. Only named-resource locks live there; locks on explicit
--file paths are not tracked anywhere and do not appear.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := lockdir.Dir()
		if err != nil {
			fmt.Println("❌ Error:", err)
			os.Exit(3)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			fmt.Println("❌ Error:", err)
			os.Exit(3)
		}

		var outputs []*StatusOutput
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lock") {
				continue
			}
			output, err := probeTarget(filepath.Join(dir, entry.Name()))
			if err != nil {
				fmt.Println("❌ Error:", err)
				os.Exit(3)
			}
			outputs = append(outputs, output)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			_ = encoder.Encode(outputs)
			return
		}

		if len(outputs) == 0 {
			fmt.Printf("No lock files in %s\n", dir)
			return
		}

		for _, output := range outputs {
			if output.Held {
				holderDesc := "holder unknown"
				if output.Holder != nil {
					holderDesc = fmt.Sprintf("PID %d on %s", output.Holder.PID, output.Holder.Hostname)
				}
				fmt.Printf("🔒 %s (%s)\n", output.Target, holderDesc)
			} else {
				fmt.Printf("🟢 %s\n", output.Target)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "Return structured output in JSON format")
}
