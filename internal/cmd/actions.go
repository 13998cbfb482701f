package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"launchman/internal/domain"
)

// viewResult tells the main loop how a detail view ended.
type viewResult int

const (
	exitToList viewResult = iota
	exitProgram
)

// view is the detail loop for one selected entry. Status is re-resolved on
// every pass so the view reflects the live state, not the inventory
// snapshot the selection was made from. No action here is fatal: failures
// are reported in one line and the menu is shown again.
func (s *Session) view(entry domain.Entry) viewResult {
	for {
		status, err := s.cp.Status(entry.Label)
		if err != nil {
			log.Warn("cannot resolve status", "label", entry.Label, "err", err)
			status = domain.StatusUnloaded
		}

		fmt.Fprintf(s.out, "\n%s\n", entry.Label)
		fmt.Fprintf(s.out, "  Scope:  %s\n", entry.Scope.Title())
		fmt.Fprintf(s.out, "  Status: %s\n", status)
		fmt.Fprintf(s.out, "  Path:   %s\n", entry.Path)
		fmt.Fprint(s.out, "  1) Reveal in Finder\n  2) Load once\n  3) Load persistent\n  4) Delete\n  5) Return\n  6) Quit\n")
		fmt.Fprint(s.out, "Choose an option: ")

		line, err := s.readLine()
		if err != nil {
			return exitProgram
		}
		switch line {
		case "1":
			if err := s.rev.Reveal(entry.Path); err != nil {
				fmt.Fprintf(s.out, "Could not reveal: %v\n", err)
			}
		case "2":
			s.load(entry, false)
		case "3":
			s.load(entry, true)
		case "4":
			if s.delete(entry) {
				return exitToList // back to the rebuilt list, even if removal failed
			}
		case "5":
			return exitToList
		case "6":
			return exitProgram
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

// load registers the descriptor, persistently or for this boot only, and
// rebuilds the inventory since registration state changed.
func (s *Session) load(entry domain.Entry, persistent bool) {
	if err := s.cp.Load(entry.Path, entry.Scope, persistent); err != nil {
		fmt.Fprintf(s.out, "Load failed: %v\n", err)
	} else {
		fmt.Fprintf(s.out, "Loaded %s.\n", entry.Label)
	}
	s.reload()
}

// delete removes the descriptor file after an explicit confirmation and
// reports whether the action ran. The preceding unload is advisory
// cleanup: its failure is ignored, the file is removed regardless.
// Declining the confirmation leaves everything untouched, including the
// inventory.
func (s *Session) delete(entry domain.Entry) bool {
	fmt.Fprint(s.out, "Are you sure? (y/N): ")
	line, err := s.readLine()
	if err != nil || !strings.EqualFold(line, "y") {
		fmt.Fprintln(s.out, "Cancelled.")
		return false
	}

	if err := s.cp.Unload(entry.Path, entry.Scope); err != nil {
		log.Debug("advisory unload failed", "label", entry.Label, "err", err)
	}
	if err := os.Remove(entry.Path); err != nil {
		fmt.Fprintf(s.out, "Delete failed: %v\n", err)
	} else {
		fmt.Fprintf(s.out, "Deleted %s.\n", entry.Label)
	}
	s.reload()
	return true
}
