package state

// Transactional carries the version counter of a model and batches its
// mutations. The zero value is usable and notifies nobody.
type Transactional struct {
	stateID uint64
	inside  bool
	bus     *ChangeBus
}

// NewTransactional returns a Transactional whose changes are dispatched on
// bus. bus may be nil.
func NewTransactional(bus *ChangeBus) Transactional {
	return Transactional{bus: bus}
}

// StateID is bumped by one for every outermost Mutate call.
func (t *Transactional) StateID() uint64 {
	return t.stateID
}

// Changes returns the bus notified after each outermost Mutate call.
func (t *Transactional) Changes() *ChangeBus {
	return t.bus
}

// InTransaction reports whether a Mutate call is running.
func (t *Transactional) InTransaction() bool {
	return t.inside
}

// Mutate runs fn as one transaction. Nested calls run fn inline. When the
// outermost call returns, whether fn returned an error or panicked, the
// state id is bumped and the bus is dispatched; the error or panic then
// reaches the caller.
func (t *Transactional) Mutate(fn func() error) error {
	if t.inside {
		return fn()
	}
	t.inside = true
	defer func() {
		t.inside = false
		t.stateID++
		if t.bus != nil {
			t.bus.Dispatch()
		}
	}()
	return fn()
}
