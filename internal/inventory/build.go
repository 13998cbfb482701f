package inventory

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"launchman/internal/domain"
)

// Dirs holds the three scan directories. Scan order is fixed: user agents,
// then global agents, then global daemons.
type Dirs struct {
	UserAgents    string
	GlobalAgents  string
	GlobalDaemons string
}

// DefaultDirs returns the standard launchd descriptor directories for the
// current user.
func DefaultDirs() (Dirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dirs{}, err
	}
	return Dirs{
		UserAgents:    filepath.Join(home, "Library", "LaunchAgents"),
		GlobalAgents:  "/Library/LaunchAgents",
		GlobalDaemons: "/Library/LaunchDaemons",
	}, nil
}

// ForScope returns the directory scanned for the given scope.
func (d Dirs) ForScope(scope domain.Scope) string {
	switch scope {
	case domain.ScopeGlobalAgent:
		return d.GlobalAgents
	case domain.ScopeGlobalDaemon:
		return d.GlobalDaemons
	default:
		return d.UserAgents
	}
}

// Build scans all three directories and resolves each discovered label's
// status through the control plane, producing a fresh inventory. It is
// called on startup and again after every mutating action; the previous
// inventory is always replaced wholesale. An unreadable directory simply
// contributes zero entries. Duplicate labels across directories are kept
// as independent entries.
func Build(dirs Dirs, cp domain.ControlPlane) domain.Inventory {
	var inv domain.Inventory
	for _, scope := range domain.Scopes {
		for _, c := range scanDir(dirs.ForScope(scope)) {
			status, err := cp.Status(c.label)
			if err != nil {
				log.Warn("cannot resolve status, treating as unloaded", "label", c.label, "err", err)
				status = domain.StatusUnloaded
			}
			inv = append(inv, domain.Entry{
				Scope:  scope,
				Label:  c.label,
				Status: status,
				Path:   c.path,
			})
		}
	}
	return inv
}
