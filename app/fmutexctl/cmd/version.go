package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	versionJSON     bool
	versionNoRemote bool
	versionTimeout  int
)

// VersionInfo represents CLI version information
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	Platform  string `json:"platform"`
}

// UpdateInfo represents update check information
type UpdateInfo struct {
	Latest      *string   `json:"latest"`
	IsAvailable bool      `json:"isAvailable"`
	URL         *string   `json:"url"`
	Checked     time.Time `json:"checked"`
	Error       string    `json:"error,omitempty"`
}

// VersionOutput represents the complete version command output
type VersionOutput struct {
	CLI    VersionInfo `json:"cli"`
	Update *UpdateInfo `json:"update,omitempty"`
}

// GitHubRelease represents a GitHub release
type GitHubRelease struct {
	TagName    string `json:"tag_name"`
	Prerelease bool   `json:"prerelease"`
	Draft      bool   `json:"draft"`
	HTMLURL    string `json:"html_url"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long: `Display version information for the fmutexctl CLI.
Also checks for available updates on GitHub by default.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		output := VersionOutput{
			CLI: VersionInfo{
				Version:   Version,
				Commit:    Commit,
				BuildDate: BuildDate,
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			},
		}

		if !versionNoRemote {
			output.Update = checkForUpdates(ctx, Version, time.Duration(versionTimeout)*time.Second)
		}

		if versionJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			_ = encoder.Encode(output)
			return
		}

		fmt.Printf("fmutexctl %s (commit %s, %s)\n", output.CLI.Version, shortCommit(output.CLI.Commit), output.CLI.BuildDate)
		if output.Update != nil {
			switch {
			case output.Update.Error != "":
				fmt.Fprintf(os.Stderr, "Update check failed: %s\n", output.Update.Error)
			case output.Update.IsAvailable && output.Update.Latest != nil:
				fmt.Printf("Update: %s available\n", *output.Update.Latest)
			default:
				fmt.Println("Up to date.")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output in JSON format")
	versionCmd.Flags().BoolVar(&versionNoRemote, "no-remote", false, "Skip GitHub update check")
	versionCmd.Flags().IntVar(&versionTimeout, "timeout", 3, "Network timeout in seconds for update check")
}

// checkForUpdates checks GitHub for newer releases
func checkForUpdates(ctx context.Context, currentVersion string, timeout time.Duration) *UpdateInfo {
	info := &UpdateInfo{
		Checked: time.Now(),
	}

	client := &http.Client{
		Timeout: timeout,
	}

	url := "https://api.github.com/repos/hydraide/fmutex/releases"
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		info.Error = fmt.Sprintf("failed to create request: %v", err)
		return info
	}

	resp, err := client.Do(req)
	if err != nil {
		info.Error = fmt.Sprintf("failed to check for updates: %v", err)
		return info
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusForbidden {
			info.Error = "GitHub API rate limit exceeded. Try again later"
		} else {
			info.Error = fmt.Sprintf("GitHub API returned status %d", resp.StatusCode)
		}
		return info
	}

	var releases []GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		info.Error = fmt.Sprintf("failed to parse GitHub response: %v", err)
		return info
	}

	for _, release := range releases {
		if release.Draft || release.Prerelease {
			continue
		}

		latestVersion := release.TagName
		if isNewerVersion(latestVersion, currentVersion) {
			info.Latest = &latestVersion
			info.IsAvailable = true
			info.URL = &release.HTMLURL
			break
		}
	}

	return info
}

// isNewerVersion performs semantic version comparison
func isNewerVersion(latest, current string) bool {
	// Handle dev version - always consider updates available
	if current == "dev" {
		return true
	}

	latest = strings.TrimPrefix(latest, "v")
	current = strings.TrimPrefix(current, "v")

	latestVer, err := semver.NewVersion(latest)
	if err != nil {
		// If we can't parse the latest version, fall back to string comparison
		return latest > current
	}

	currentVer, err := semver.NewVersion(current)
	if err != nil {
		// If we can't parse current version, assume update is available
		return true
	}

	return latestVer.GreaterThan(currentVer)
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
