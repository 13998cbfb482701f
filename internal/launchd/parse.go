package launchd

import (
	"strconv"
	"strings"
)

// parsePID extracts the PID value from `launchctl list <label>` output,
// which contains a line of the form `"PID" = 1234;` when the job has an
// active process. Returns 0 when no positive PID is present.
func parsePID(out string) int {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, `"PID"`) {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSuffix(strings.TrimSpace(value), ";")
		pid, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		if pid > 0 {
			return pid
		}
	}
	return 0
}

// parseDisabled extracts the disabled label set from `launchctl
// print-disabled` output. Depending on the OS release, disabled entries
// read either `"com.example.foo" => disabled` or `"com.example.foo" => true`;
// enabled exceptions read `=> enabled` or `=> false` and are ignored.
func parseDisabled(out string) map[string]bool {
	disabled := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		name, state, ok := strings.Cut(strings.TrimSpace(line), "=>")
		if !ok {
			continue
		}
		label := strings.Trim(strings.TrimSpace(name), `"`)
		if label == "" {
			continue
		}
		switch strings.TrimSpace(state) {
		case "disabled", "true":
			disabled[label] = true
		}
	}
	return disabled
}

// firstLine returns the first non-empty line of command output, for
// inclusion in error messages.
func firstLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return "no output"
}
