package launchd

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"launchman/internal/domain"
)

// patchLaunchctl substitutes the launchctl runner and records invocations.
func patchLaunchctl(t *testing.T, out string, err error) *[][]string {
	t.Helper()
	var calls [][]string
	orig := runLaunchctl
	runLaunchctl = func(args ...string) (string, error) {
		calls = append(calls, args)
		return out, err
	}
	t.Cleanup(func() { runLaunchctl = orig })
	return &calls
}

func patchElevated(t *testing.T, out string, err error) *[][]string {
	t.Helper()
	var calls [][]string
	orig := runElevated
	runElevated = func(args ...string) (string, error) {
		calls = append(calls, args)
		return out, err
	}
	t.Cleanup(func() { runElevated = orig })
	return &calls
}

// exitError produces a genuine *exec.ExitError for the unregistered case.
func exitError(t *testing.T) error {
	t.Helper()
	err := exec.Command("sh", "-c", "exit 1").Run()
	if err == nil {
		t.Fatal("expected sh to exit non-zero")
	}
	return err
}

func TestStatus_UnregisteredIsNotAnError(t *testing.T) {
	patchLaunchctl(t, "Could not find service", exitError(t))

	status, err := Client{}.Status("com.example.absent")
	if err != nil {
		t.Fatalf("unregistered label must not error, got %v", err)
	}
	if status != domain.StatusUnloaded {
		t.Errorf("status = %s, want unloaded", status)
	}
}

func TestStatus_RunningWithPID(t *testing.T) {
	patchLaunchctl(t, listOutputRunning, nil)

	status, err := Client{}.Status("com.example.foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.StatusRunning {
		t.Errorf("status = %s, want running", status)
	}
}

func TestStatus_RegisteredWithoutPID(t *testing.T) {
	patchLaunchctl(t, listOutputIdle, nil)

	status, err := Client{}.Status("com.example.foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.StatusLoaded {
		t.Errorf("status = %s, want loaded", status)
	}
}

func TestStatus_ExecFailureIsAnError(t *testing.T) {
	patchLaunchctl(t, "", errors.New("launchctl not found"))

	if _, err := (Client{}).Status("com.example.foo"); err == nil {
		t.Fatal("expected error when launchctl cannot run at all")
	}
}

func TestDisabledLabels_UserTarget(t *testing.T) {
	calls := patchLaunchctl(t, `"com.example.foo" => disabled`, nil)
	origUID := currentUID
	currentUID = func() int { return 501 }
	t.Cleanup(func() { currentUID = origUID })

	disabled := Client{}.DisabledLabels(domain.ScopeUserAgent)
	if !disabled["com.example.foo"] {
		t.Error("foo should be reported disabled")
	}
	want := []string{"print-disabled", "user/501"}
	if len(*calls) != 1 || strings.Join((*calls)[0], " ") != strings.Join(want, " ") {
		t.Errorf("launchctl args = %v, want %v", *calls, want)
	}
}

func TestDisabledLabels_SystemTarget(t *testing.T) {
	calls := patchLaunchctl(t, "", nil)

	Client{}.DisabledLabels(domain.ScopeGlobalDaemon)
	if len(*calls) != 1 || (*calls)[0][1] != "system" {
		t.Errorf("launchctl args = %v, want print-disabled system", *calls)
	}
}

func TestDisabledLabels_FailureDegradesToEnabled(t *testing.T) {
	patchLaunchctl(t, "", errors.New("timed out"))

	disabled := Client{}.DisabledLabels(domain.ScopeUserAgent)
	if len(disabled) != 0 {
		t.Errorf("a failed query must report nothing disabled, got %v", disabled)
	}
}

func TestLoad_TransientVsPersistent(t *testing.T) {
	calls := patchLaunchctl(t, "", nil)

	if err := (Client{}).Load("/tmp/a.plist", domain.ScopeUserAgent, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Client{}).Load("/tmp/a.plist", domain.ScopeUserAgent, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join((*calls)[0], " "); got != "load /tmp/a.plist" {
		t.Errorf("transient load args = %q", got)
	}
	if got := strings.Join((*calls)[1], " "); got != "load -w /tmp/a.plist" {
		t.Errorf("persistent load args = %q", got)
	}
}

func TestLoad_SystemScopeIsElevated(t *testing.T) {
	direct := patchLaunchctl(t, "", nil)
	elevated := patchElevated(t, "", nil)

	if err := (Client{}).Unload("/Library/LaunchDaemons/a.plist", domain.ScopeGlobalDaemon); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*direct) != 0 {
		t.Errorf("system-scope mutation must not run unelevated, got %v", *direct)
	}
	if len(*elevated) != 1 || (*elevated)[0][0] != "unload" {
		t.Errorf("elevated calls = %v", *elevated)
	}
}

func TestLoad_FailureIncludesOutput(t *testing.T) {
	patchLaunchctl(t, "\nLoad failed: 5: Input/output error\n", errors.New("exit status 5"))

	err := Client{}.Load("/tmp/a.plist", domain.ScopeUserAgent, false)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Input/output error") {
		t.Errorf("error should carry launchctl's message, got %v", err)
	}
}
