package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"launchman/internal/domain"
)

// exportEntry is the YAML shape of one inventory row.
type exportEntry struct {
	Scope   string `yaml:"scope"`
	Label   string `yaml:"label"`
	Status  string `yaml:"status"`
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// export dumps the current inventory as YAML for scripting. Enablement is
// queried live, same as a render.
func (s *Session) export() {
	data, err := marshalInventory(s.inv, s.cp)
	if err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "---\n%s", data)
}

func marshalInventory(inv domain.Inventory, cp domain.ControlPlane) ([]byte, error) {
	disabled := make(map[domain.Scope]map[string]bool, len(domain.Scopes))
	for _, scope := range domain.Scopes {
		disabled[scope] = cp.DisabledLabels(scope)
	}

	rows := make([]exportEntry, 0, len(inv))
	for _, entry := range inv {
		rows = append(rows, exportEntry{
			Scope:   string(entry.Scope),
			Label:   entry.Label,
			Status:  string(entry.Status),
			Enabled: !disabled[entry.Scope][entry.Label],
			Path:    entry.Path,
		})
	}
	return yaml.Marshal(rows)
}
