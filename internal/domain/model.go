package domain

// Scope identifies which launchd domain a descriptor belongs to,
// determined solely by the directory it was discovered in.
type Scope string

const (
	ScopeUserAgent    Scope = "user-agent"
	ScopeGlobalAgent  Scope = "global-agent"
	ScopeGlobalDaemon Scope = "global-daemon"
)

// Scopes lists all scopes in scan order.
var Scopes = []Scope{ScopeUserAgent, ScopeGlobalAgent, ScopeGlobalDaemon}

// System reports whether mutating actions in this scope need elevation.
func (s Scope) System() bool {
	return s == ScopeGlobalAgent || s == ScopeGlobalDaemon
}

// Title returns the human-readable section heading for the scope.
func (s Scope) Title() string {
	switch s {
	case ScopeUserAgent:
		return "User Agents"
	case ScopeGlobalAgent:
		return "Global Agents"
	case ScopeGlobalDaemon:
		return "Global Daemons"
	}
	return string(s)
}

// Status is the three-way runtime state of a discovered service.
type Status string

const (
	// StatusRunning means the label is registered and has an active process.
	StatusRunning Status = "running"
	// StatusLoaded means the label is registered but has no active process.
	StatusLoaded Status = "loaded"
	// StatusUnloaded means the label is not registered with launchd.
	StatusUnloaded Status = "unloaded"
)

// Registered reports whether the status implies registration with launchd.
func (s Status) Registered() bool {
	return s == StatusRunning || s == StatusLoaded
}

// Entry is one discovered service descriptor with its resolved state.
// Path is the immutable identity used for filesystem and launchctl operations.
type Entry struct {
	Scope  Scope
	Label  string
	Status Status
	Path   string
}

// Inventory is the ordered collection of all discovered entries. It is
// discarded and rebuilt wholesale after any mutating action, never patched.
type Inventory []Entry
