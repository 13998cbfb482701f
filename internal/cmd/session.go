package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"launchman/internal/domain"
	"launchman/internal/inventory"
	"launchman/internal/launchd"
)

// Session owns the interactive state: the current inventory and the display
// mapping of the latest render. Both are rebuilt wholesale, never patched,
// so a selection can only ever resolve against the freshest render.
type Session struct {
	dirs    inventory.Dirs
	cp      domain.ControlPlane
	rev     domain.Revealer
	in      *bufio.Reader
	out     io.Writer
	inv     domain.Inventory
	mapping DisplayMapping
}

// NewSession wires a session against explicit collaborators; tests pass
// fakes and temp directories.
func NewSession(dirs inventory.Dirs, cp domain.ControlPlane, rev domain.Revealer, in io.Reader, out io.Writer) *Session {
	return &Session{
		dirs: dirs,
		cp:   cp,
		rev:  rev,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run launches the interactive session against the real launchd control
// plane and the standard descriptor directories.
func Run(in io.Reader, out io.Writer) error {
	dirs, err := inventory.DefaultDirs()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	fmt.Fprint(out, "\x1b[2J\x1b[H") // clear screen on startup
	return NewSession(dirs, launchd.Client{}, launchd.Finder{}, in, out).Run()
}

// Run drives the main loop until the operator quits or input ends.
func (s *Session) Run() error {
	s.reload()
	for {
		s.mapping = renderReport(s.out, s.inv, s.cp)
		fmt.Fprintln(s.out, "Extras: 'n' creates a new user agent, 'e' exports the inventory as YAML.")
		fmt.Fprint(s.out, "Select an item by number, or 'q' to quit: ")
		line, err := s.readLine()
		if err != nil {
			return nil // input closed, treat as quit
		}
		switch strings.ToLower(line) {
		case "q":
			return nil
		case "n":
			s.newAgent()
		case "e":
			s.export()
		default:
			num, err := strconv.Atoi(line)
			entry, ok := s.mapping[num]
			if err != nil || !ok {
				fmt.Fprintln(s.out, "Invalid selection.")
				continue
			}
			if s.view(entry) == exitProgram {
				return nil
			}
		}
	}
}

// reload rebuilds the inventory from scratch and invalidates the display
// mapping. Called on startup and after every mutating action; cached
// statuses are never trusted across a mutation.
func (s *Session) reload() {
	s.inv = inventory.Build(s.dirs, s.cp)
	s.mapping = nil
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
