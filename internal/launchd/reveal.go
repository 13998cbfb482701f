package launchd

import (
	"fmt"
	"os"
	"os/exec"
)

// runOpen launches the file browser; patchable for tests.
var runOpen = func(path string) error {
	return exec.Command("open", "-R", path).Run()
}

// Finder reveals descriptor files in the macOS file browser.
type Finder struct{}

// Reveal highlights path in a Finder window. A path that no longer exists
// (e.g. deleted since the last scan) is reported, not retried.
func (Finder) Reveal(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("descriptor no longer exists: %w", err)
	}
	if err := runOpen(path); err != nil {
		return fmt.Errorf("open -R %s: %w", path, err)
	}
	return nil
}
