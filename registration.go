package eventmgr

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// Listener is a callback registered for an event type. It receives the params passed to Emit.
type Listener[V any] func(V)

// listenerID identifies a listener by its code pointer. Functions are not comparable in Go, so
// two closures built from the same function literal share an identity.
func listenerID[V any](l Listener[V]) uintptr {
	if l == nil {
		return 0
	}
	return reflect.ValueOf(l).Pointer()
}

// Registration is a single listener entry owned by a Registry. Its type and tag never change
// once it has been created.
type Registration[V any] struct {
	registry *Registry[V]
	id       Identifier
	listener Listener[V]
	ptr      uintptr
	once     bool
	fired    atomic.Bool
	removed  atomic.Bool
}

func newRegistration[V any](r *Registry[V], id Identifier, l Listener[V], once bool) *Registration[V] {
	return &Registration[V]{
		registry: r,
		id:       id,
		listener: l,
		ptr:      listenerID(l),
		once:     once,
	}
}

func (s *Registration[V]) Type() string { return s.id.Type }

// Tag returns the registration tag and whether one was given.
func (s *Registration[V]) Tag() (string, bool) { return s.id.Tag, s.id.HasTag }

func (s *Registration[V]) Once() bool { return s.once }

func (s *Registration[V]) Identifier() Identifier { return s.id }

func (s *Registration[V]) String() string {
	return fmt.Sprintf("Registration{id=%s,once=%t}", s.id, s.once)
}

// Match reports whether the registration is addressed by identifier and, when non-nil, by
// listener. An identifier with an empty type, such as ".tag", filters on the tag alone.
func (s *Registration[V]) Match(identifier string, listener Listener[V]) bool {
	if listener != nil && listenerID(listener) != s.ptr {
		return false
	}

	return s.matchIdentifier(ParseIdentifier(identifier))
}

func (s *Registration[V]) matchIdentifier(id Identifier) bool {
	if id.Type != "" && id.Type != s.id.Type {
		return false
	}

	// "type." carries an empty tag, which filters nothing.
	if id.HasTag && id.Tag != "" && id.Tag != s.id.Tag {
		return false
	}

	return true
}

// Remove detaches the registration from its registry. Removing twice is a no-op.
func (s *Registration[V]) Remove() {
	if !s.removed.CompareAndSwap(false, true) {
		return
	}
	s.registry.remove(s)
}

func (s *Registration[V]) trigger(params V) {
	if s.once {
		// a once registration may sit in several in-flight snapshots, only the first one fires
		if !s.fired.CompareAndSwap(false, true) {
			return
		}
		s.listener(params)
		s.Remove()
		return
	}

	s.listener(params)
}
