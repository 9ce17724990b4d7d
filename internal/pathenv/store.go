package pathenv

// Store is the persistent machine-scope PATH variable: durable across
// sessions and inherited by newly started processes, distinct from this
// process's in-memory copy.
type Store interface {
	// Load returns the current stored value. An unset variable loads as ""
	// without error.
	Load() (string, error)
	// Save replaces the stored value wholesale. Requires elevation.
	Save(value string) error
}
