package domain

// ControlPlane is the narrow view of launchd the core logic depends on.
// The real implementation shells out to launchctl; tests substitute fakes
// returning canned registration and enablement data.
type ControlPlane interface {
	// Status classifies a label as Running, Loaded, or Unloaded. An
	// unregistered label is a normal outcome (StatusUnloaded, nil error),
	// never an error.
	Status(label string) (Status, error)

	// DisabledLabels returns the set of labels explicitly marked disabled
	// in the boot-enablement registry for the scope. Labels absent from
	// the set are enabled. A failed query returns an empty set: enablement
	// degrades to "enabled" rather than reporting false negatives.
	DisabledLabels(scope Scope) map[string]bool

	// Load registers the descriptor at path. With persistent set it also
	// clears the label's disabled flag so it starts at boot.
	Load(path string, scope Scope, persistent bool) error

	// Unload unregisters the descriptor at path.
	Unload(path string, scope Scope) error
}

// Revealer locates a descriptor file in the system file browser.
type Revealer interface {
	Reveal(path string) error
}
