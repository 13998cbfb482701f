package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"launchman/internal/domain"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	bucketStyle    = lipgloss.NewStyle().Faint(true)
	separatorStyle = lipgloss.NewStyle().Faint(true)
)

// DisplayMapping maps a 1-based display number to an entry. It is produced
// fresh by every render and is only valid until the next rebuild: numbers
// from a stale render must never be resolved against a newer mapping.
type DisplayMapping map[int]domain.Entry

// bucketOrder fixes how the six display buckets are laid out. Within a
// scope, registered entries come before unregistered ones.
var bucketOrder = []struct {
	scope  domain.Scope
	loaded bool
}{
	{domain.ScopeUserAgent, true},
	{domain.ScopeUserAgent, false},
	{domain.ScopeGlobalAgent, true},
	{domain.ScopeGlobalAgent, false},
	{domain.ScopeGlobalDaemon, true},
	{domain.ScopeGlobalDaemon, false},
}

// renderReport prints the grouped inventory to w and returns the display
// mapping for the operator's next selection. Display numbers run
// contiguously from 1 across all six buckets in render order. Enablement
// is looked up per render through the control plane's disabled registry and
// shown as a trailing `*`; it is orthogonal to the loaded/unloaded split.
func renderReport(w io.Writer, inv domain.Inventory, cp domain.ControlPlane) DisplayMapping {
	disabled := make(map[domain.Scope]map[string]bool, len(domain.Scopes))
	for _, scope := range domain.Scopes {
		disabled[scope] = cp.DisabledLabels(scope)
	}

	mapping := make(DisplayMapping)
	num := 1
	for i, bucket := range bucketOrder {
		if i > 0 && bucket.scope != bucketOrder[i-1].scope {
			fmt.Fprintln(w, separatorStyle.Render("────────────────────────────────"))
		}
		title := bucket.scope.Title()
		state := "Unloaded"
		if bucket.loaded {
			state = "Loaded"
		}
		fmt.Fprintf(w, "%s %s\n", headerStyle.Render(title), bucketStyle.Render("| "+state))

		for _, entry := range inv {
			if entry.Scope != bucket.scope || entry.Status.Registered() != bucket.loaded {
				continue
			}
			marker := ""
			if !disabled[entry.Scope][entry.Label] {
				marker = " *"
			}
			fmt.Fprintf(w, "  %d. %s (%s)%s\n", num, entry.Label, entry.Status, marker)
			mapping[num] = entry
			num++
		}
	}
	return mapping
}
