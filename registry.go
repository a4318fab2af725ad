package eventmgr

import (
	"sort"
	"sync"
)

// Registry keeps an ordered list of listener registrations and the set of event types that
// have been emitted at least once. Dispatch is synchronous and follows insertion order.
// Listeners and hooks always run without the registry lock held, so they may call back into it.
type Registry[V any] struct {
	stacks  []*Registration[V]
	history map[string]struct{}
	lock    sync.RWMutex

	onBeforeAdd    Hook[V]
	onBeforeRemove Hook[V]
	logger         Logger
	strict         bool

	emitter *handle[V]
}

// New creates an empty Registry.
func New[V any](cfg Config[V]) *Registry[V] {
	r := &Registry[V]{
		history:        make(map[string]struct{}),
		onBeforeAdd:    cfg.OnBeforeAddListener,
		onBeforeRemove: cfg.OnBeforeRemoveListener,
		logger:         cfg.logger().WithField("component", "event_registry"),
		strict:         cfg.Strict,
	}
	r.emitter = &handle[V]{registry: r}
	return r
}

// Attach creates a Registry and binds its Emitter to host.
func Attach[V any](host Host[V], cfg Config[V]) *Registry[V] {
	r := New[V](cfg)
	host.BindEmitter(r.Emitter())
	return r
}

// Emitter returns the host-facing handle of the registry.
func (r *Registry[V]) Emitter() Emitter[V] {
	return r.emitter
}

// AddListener registers listener under identifier. Duplicates are kept as independent registrations.
func (r *Registry[V]) AddListener(identifier string, listener Listener[V], once bool) (*Registration[V], error) {
	if listener == nil {
		return nil, wrapErrRejectedRegistration(ErrNilListener, identifier, once)
	}

	var id Identifier
	if r.strict {
		var err error
		if id, err = ParseIdentifierStrict(identifier); err != nil {
			return nil, wrapErrRejectedRegistration(err, identifier, once)
		}
	} else {
		id = ParseIdentifier(identifier)
	}

	stack := newRegistration(r, id, listener, once)

	if r.onBeforeAdd != nil {
		r.onBeforeAdd(stack)
	}

	r.lock.Lock()
	r.stacks = append(r.stacks, stack)
	r.lock.Unlock()

	r.logger.Debugf("added %s", stack)

	return stack, nil
}

// Find returns the registrations matching identifier and, when non-nil, listener, in registry order.
func (r *Registry[V]) Find(identifier string, listener Listener[V]) []*Registration[V] {
	r.lock.RLock()
	defer r.lock.RUnlock()

	var stacks []*Registration[V]
	for _, stack := range r.stacks {
		if stack.Match(identifier, listener) {
			stacks = append(stacks, stack)
		}
	}
	return stacks
}

// Off removes every registration matching identifier and, when non-nil, listener. It returns
// the number of registrations removed.
func (r *Registry[V]) Off(identifier string, listener Listener[V]) int {
	stacks := r.Find(identifier, listener)
	for _, stack := range stacks {
		stack.Remove()
	}
	return len(stacks)
}

// Emit triggers the listeners registered for the bare type of identifier, then records the
// type as fired. A tag on identifier is ignored: tagged and untagged registrations all fire.
func (r *Registry[V]) Emit(identifier string, params V) {
	typ := bareType(identifier)

	stacks := r.Find(typ, nil)

	r.logger.Debugf("emitting '%s' to %d listener(s)", typ, len(stacks))

	for _, stack := range stacks {
		stack.trigger(params)
	}

	r.lock.Lock()
	r.history[typ] = struct{}{}
	r.lock.Unlock()
}

// Has reports whether an event of type typ has been emitted since creation or the last Destroy.
func (r *Registry[V]) Has(typ string) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()

	_, ok := r.history[typ]
	return ok
}

// Destroy removes every registration, running the remove hook for each in registry order,
// and forgets the emit history.
func (r *Registry[V]) Destroy() {
	stacks := r.Registrations()
	for _, stack := range stacks {
		stack.Remove()
	}

	r.lock.Lock()
	r.history = make(map[string]struct{})
	r.lock.Unlock()

	r.logger.Debugf("destroyed, %d registration(s) removed", len(stacks))
}

// Len returns the number of live registrations.
func (r *Registry[V]) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.stacks)
}

// Registrations returns a copy of the live registrations in insertion order.
func (r *Registry[V]) Registrations() []*Registration[V] {
	r.lock.RLock()
	defer r.lock.RUnlock()

	stacks := make([]*Registration[V], len(r.stacks))
	copy(stacks, r.stacks)
	return stacks
}

// History returns the fired event types, sorted.
func (r *Registry[V]) History() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	types := make([]string, 0, len(r.history))
	for typ := range r.history {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

func (r *Registry[V]) remove(stack *Registration[V]) {
	if r.onBeforeRemove != nil {
		r.onBeforeRemove(stack)
	}

	r.lock.Lock()
	for i, s := range r.stacks {
		if s == stack {
			r.stacks = append(r.stacks[:i:i], r.stacks[i+1:]...)
			break
		}
	}
	r.lock.Unlock()

	r.logger.Debugf("removed %s", stack)
}
