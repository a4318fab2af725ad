package eventmgr

type (
	// Emitter is the set of event methods a host exposes. None of them fail: rejected
	// registrations are logged and dropped.
	Emitter[V any] interface {
		// On registers listener for every future emit of the identifier type.
		On(identifier string, listener Listener[V])
		// One registers listener for the next emit of the identifier type only.
		One(identifier string, listener Listener[V])
		// Has reports whether typ has been emitted. When it has, the first non-nil listener
		// is called right away with the zero value of V.
		Has(typ string, listener ...Listener[V]) bool
		// HasAndOn is Has followed by an unconditional On.
		HasAndOn(identifier string, listener Listener[V]) bool
		// HasAndOne calls listener right away if the type has been emitted, otherwise registers
		// it with One.
		HasAndOne(identifier string, listener Listener[V]) bool
		// Off removes the registrations matching identifier, filtered by listener when given.
		Off(identifier string, listener ...Listener[V])
		// Emit triggers the listeners of the identifier type.
		Emit(identifier string, params V)
	}

	// Host is implemented by values that expose an Emitter bound to them by Attach.
	Host[V any] interface {
		BindEmitter(Emitter[V])
	}
)

type handle[V any] struct {
	registry *Registry[V]
}

func (h *handle[V]) add(identifier string, listener Listener[V], once bool) {
	if _, err := h.registry.AddListener(identifier, listener, once); err != nil {
		h.registry.logger.Warnf("listener dropped: %s", err)
	}
}

func (h *handle[V]) On(identifier string, listener Listener[V]) {
	h.add(identifier, listener, false)
}

func (h *handle[V]) One(identifier string, listener Listener[V]) {
	h.add(identifier, listener, true)
}

func (h *handle[V]) Has(typ string, listener ...Listener[V]) bool {
	if !h.registry.Has(typ) {
		return false
	}

	if l := firstListener(listener); l != nil {
		var zero V
		l(zero)
	}
	return true
}

func (h *handle[V]) HasAndOn(identifier string, listener Listener[V]) bool {
	fired := h.Has(bareType(identifier), listener)
	h.On(identifier, listener)
	return fired
}

func (h *handle[V]) HasAndOne(identifier string, listener Listener[V]) bool {
	if h.Has(bareType(identifier), listener) {
		return true
	}
	h.One(identifier, listener)
	return false
}

func (h *handle[V]) Off(identifier string, listener ...Listener[V]) {
	h.registry.Off(identifier, firstListener(listener))
}

func (h *handle[V]) Emit(identifier string, params V) {
	h.registry.Emit(identifier, params)
}

func firstListener[V any](listeners []Listener[V]) Listener[V] {
	for _, l := range listeners {
		if l != nil {
			return l
		}
	}
	return nil
}

// Events can be embedded in a host type to give it the Emitter methods. Calls made before
// BindEmitter are no-ops.
type Events[V any] struct {
	emitter Emitter[V]
}

func (e *Events[V]) BindEmitter(emitter Emitter[V]) {
	e.emitter = emitter
}

func (e *Events[V]) On(identifier string, listener Listener[V]) {
	if e.emitter != nil {
		e.emitter.On(identifier, listener)
	}
}

func (e *Events[V]) One(identifier string, listener Listener[V]) {
	if e.emitter != nil {
		e.emitter.One(identifier, listener)
	}
}

func (e *Events[V]) Has(typ string, listener ...Listener[V]) bool {
	return e.emitter != nil && e.emitter.Has(typ, listener...)
}

func (e *Events[V]) HasAndOn(identifier string, listener Listener[V]) bool {
	return e.emitter != nil && e.emitter.HasAndOn(identifier, listener)
}

func (e *Events[V]) HasAndOne(identifier string, listener Listener[V]) bool {
	return e.emitter != nil && e.emitter.HasAndOne(identifier, listener)
}

func (e *Events[V]) Off(identifier string, listener ...Listener[V]) {
	if e.emitter != nil {
		e.emitter.Off(identifier, listener...)
	}
}

func (e *Events[V]) Emit(identifier string, params V) {
	if e.emitter != nil {
		e.emitter.Emit(identifier, params)
	}
}
