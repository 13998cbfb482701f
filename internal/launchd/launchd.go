// Package launchd shells out to launchctl to query and mutate service
// registration state. Command execution sits behind package-level variables
// so tests can substitute canned output without spawning processes.
package launchd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"launchman/internal/domain"
)

// runLaunchctl executes launchctl with args and returns its combined output.
var runLaunchctl = func(args ...string) (string, error) {
	out, err := exec.Command("launchctl", args...).CombinedOutput()
	return string(out), err
}

// runElevated executes launchctl through sudo for system-scope mutations.
var runElevated = func(args ...string) (string, error) {
	out, err := exec.Command("sudo", append([]string{"launchctl"}, args...)...).CombinedOutput()
	return string(out), err
}

// currentUID is patchable so enablement tests don't depend on the test runner's uid.
var currentUID = os.Getuid

// Client is the production control plane backed by launchctl.
type Client struct{}

// Status queries `launchctl list <label>`. A non-zero exit means the label
// is not registered, which is a normal outcome, not an error.
func (Client) Status(label string) (domain.Status, error) {
	out, err := runLaunchctl("list", label)
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return domain.StatusUnloaded, nil
		}
		return domain.StatusUnloaded, fmt.Errorf("launchctl list %s: %w", label, err)
	}
	if parsePID(out) > 0 {
		return domain.StatusRunning, nil
	}
	return domain.StatusLoaded, nil
}

// DisabledLabels queries the boot-enablement registry for the scope's
// launchd domain. The registry only tracks exceptions: labels absent from
// the returned set are enabled. On any query failure this returns an empty
// set, degrading every label to "enabled" — fail-open is deliberate, a
// transient launchctl error must not report a service as disabled at boot.
func (Client) DisabledLabels(scope domain.Scope) map[string]bool {
	target := fmt.Sprintf("user/%d", currentUID())
	if scope.System() {
		target = "system"
	}
	out, err := runLaunchctl("print-disabled", target)
	if err != nil {
		log.Warn("cannot query disabled services, assuming all enabled", "target", target, "err", err)
		return nil
	}
	return parseDisabled(out)
}

// Load registers the descriptor at path. With persistent set, -w also
// clears the label's disabled flag so it starts at boot.
func (Client) Load(path string, scope domain.Scope, persistent bool) error {
	args := []string{"load"}
	if persistent {
		args = append(args, "-w")
	}
	args = append(args, path)
	return runMutation(scope, args)
}

// Unload unregisters the descriptor at path.
func (Client) Unload(path string, scope domain.Scope) error {
	return runMutation(scope, []string{"unload", path})
}

func runMutation(scope domain.Scope, args []string) error {
	run := runLaunchctl
	if scope.System() {
		run = runElevated
	}
	if out, err := run(args...); err != nil {
		return fmt.Errorf("launchctl %s: %w (%s)", args[0], err, firstLine(out))
	}
	return nil
}
