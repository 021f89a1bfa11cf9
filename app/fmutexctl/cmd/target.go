package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/lockdir"
	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/lockname"
)

// resolveTarget turns the --file / --name flag pair into the lock target
// path. Exactly one of the two must be set; --name targets live in the
// system lock directory under a hash-derived file name.
func resolveTarget(file, name string) (string, error) {
	switch {
	case file != "" && name != "":
		return "", fmt.Errorf("--file and --name are mutually exclusive")
	case file != "":
		return file, nil
	case name != "":
		if err := lockname.Validate(name); err != nil {
			return "", err
		}
		dir, err := lockdir.Dir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, lockname.FileName(name)), nil
	default:
		return "", fmt.Errorf("either --file or --name is required")
	}
}
