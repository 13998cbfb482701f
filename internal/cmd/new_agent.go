package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"howett.net/plist"
)

// agentDefinition is the minimal descriptor the wizard writes.
type agentDefinition struct {
	Label            string   `plist:"Label"`
	ProgramArguments []string `plist:"ProgramArguments"`
	RunAtLoad        bool     `plist:"RunAtLoad"`
}

// newAgent runs the creation wizard and writes a descriptor into the user
// LaunchAgents directory. Creation is user-scope only; system directories
// stay read-only from this tool's point of view except for delete.
func (s *Session) newAgent() {
	var (
		label     string
		program   string
		runAtLoad = true
	)
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Label").
			Placeholder("com.example.myagent").
			Value(&label).
			Validate(s.validateLabel),
		huh.NewInput().
			Title("Program to run").
			Placeholder("/usr/local/bin/myservice").
			Value(&program).
			Validate(func(v string) error {
				if strings.TrimSpace(v) == "" {
					return fmt.Errorf("program cannot be empty")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("Run at load?").
			Value(&runAtLoad),
	))
	if err := form.Run(); err != nil {
		fmt.Fprintf(s.out, "Cancelled: %v\n", err)
		return
	}

	def := agentDefinition{
		Label:            strings.TrimSpace(label),
		ProgramArguments: []string{strings.TrimSpace(program)},
		RunAtLoad:        runAtLoad,
	}
	path, err := writeAgent(s.dirs.UserAgents, def)
	if err != nil {
		fmt.Fprintf(s.out, "Could not create agent: %v\n", err)
	} else {
		fmt.Fprintf(s.out, "Created %s.\n", path)
	}
	s.reload()
}

// validateLabel rejects empty labels, vendor-reserved labels, and labels
// already present in the current inventory.
func (s *Session) validateLabel(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if strings.HasPrefix(v, "com.apple.") {
		return fmt.Errorf("the com.apple. prefix is reserved")
	}
	for _, entry := range s.inv {
		if entry.Label == v {
			return fmt.Errorf("label %s already exists", v)
		}
	}
	return nil
}

// writeAgent serializes the definition as an XML property list named after
// its label. Refuses to overwrite an existing descriptor.
func writeAgent(dir string, def agentDefinition) (string, error) {
	path := filepath.Join(dir, def.Label+".plist")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	data, err := plist.MarshalIndent(def, plist.XMLFormat, "\t")
	if err != nil {
		return "", fmt.Errorf("encoding descriptor: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
