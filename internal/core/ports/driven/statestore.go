package driven

// StateStore persists named JSON records that must survive restarts.
// Each record is one logical document (the session, the transcripts map);
// Load and Save move the whole record at once. Saves are synchronous: when
// Save returns, an immediate reload observes the write.
type StateStore interface {
	// Load reads the named record into v. A missing record is not an
	// error; v is left untouched and ok is false.
	Load(name string, v any) (ok bool, err error)

	// Save marshals v and durably replaces the named record.
	Save(name string, v any) error

	// Delete removes the named record. Removing a missing record is a
	// no-op.
	Delete(name string) error
}
