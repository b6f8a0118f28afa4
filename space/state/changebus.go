package state

import "slices"

// ListenerID identifies a listener registered on a ChangeBus.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func()
}

// ChangeBus is a registry of change listeners. Buses form a tree: after a
// bus has notified its own listeners it dispatches on its parent.
//
// Dispatch iterates a snapshot of the listener list. Adding or removing a
// listener while a dispatch is running clones the list first, so the
// iteration in progress never sees the edit.
type ChangeBus struct {
	parent    *ChangeBus
	listeners []listener
	nextID    ListenerID

	// Number of Dispatch calls currently iterating on this bus.
	dispatching int
	// True while a running Dispatch may still be iterating the current
	// backing array of listeners.
	shared bool
}

func NewChangeBus(parent *ChangeBus) *ChangeBus {
	return &ChangeBus{parent: parent}
}

func (b *ChangeBus) Parent() *ChangeBus {
	return b.parent
}

// Len returns the number of registered listeners.
func (b *ChangeBus) Len() int {
	return len(b.listeners)
}

func (b *ChangeBus) AddListener(fn func()) ListenerID {
	b.detach()
	b.nextID++
	b.listeners = append(b.listeners, listener{id: b.nextID, fn: fn})
	return b.nextID
}

// RemoveListener unregisters id. It reports whether the listener was found.
func (b *ChangeBus) RemoveListener(id ListenerID) bool {
	idx := slices.IndexFunc(b.listeners, func(l listener) bool {
		return l.id == id
	})
	if idx < 0 {
		return false
	}
	b.detach()
	b.listeners = slices.Delete(b.listeners, idx, idx+1)
	return true
}

// Dispatch notifies every listener registered when the call started, then
// the parent bus.
func (b *ChangeBus) Dispatch() {
	snapshot := b.listeners
	b.dispatching++
	b.shared = true
	defer func() {
		b.dispatching--
		if b.dispatching == 0 {
			b.shared = false
		}
	}()

	for _, l := range snapshot {
		l.fn()
	}
	if b.parent != nil {
		b.parent.Dispatch()
	}
}

// detach gives the bus its own copy of the listener list when a dispatch
// may be iterating the current one.
func (b *ChangeBus) detach() {
	if !b.shared {
		return
	}
	b.listeners = slices.Clone(b.listeners)
	b.shared = false
}
