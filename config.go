package eventmgr

type (
	// Hook observes a registration right before it is added to or removed from a registry.
	Hook[V any] func(*Registration[V])

	// Config holds the optional settings of a Registry. The zero value is ready to use.
	Config[V any] struct {
		// OnBeforeAddListener runs before a new registration is appended.
		OnBeforeAddListener Hook[V]
		// OnBeforeRemoveListener runs before a registration is excised, whatever the cause:
		// Off, a fired one-time listener or Destroy.
		OnBeforeRemoveListener Hook[V]
		// Logger receives debug traces of the registry activity. Defaults to a no-op logger.
		Logger Logger
		// Strict makes registration reject identifiers without a type.
		Strict bool
	}
)

func (c Config[V]) logger() Logger {
	if c.Logger == nil {
		return noopLogger{}
	}
	return c.Logger
}
