package eventmgr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Events[string]

	name string
}

func TestAttach(t *testing.T) {
	w := &widget{name: "w"}
	r := Attach[string](w, Config[string]{})

	var got []string
	w.On("ready", func(p string) { got = append(got, p) })
	w.One("ready.init", func(p string) { got = append(got, "once:"+p) })
	require.Equal(t, 2, r.Len())

	w.Emit("ready", "a")
	w.Emit("ready", "b")

	assert.Equal(t, []string{"a", "once:a", "b"}, got)
	assert.True(t, w.Has("ready"))

	w.Off("ready")
	assert.Equal(t, 0, r.Len())
}

func TestEventsUnbound(t *testing.T) {
	w := &widget{}

	w.On("ready", func(string) {})
	w.Emit("ready", "")
	w.Off("ready")

	assert.False(t, w.Has("ready"))
	assert.False(t, w.HasAndOn("ready", func(string) {}))
	assert.False(t, w.HasAndOne("ready", func(string) {}))
}

func TestEmitterHas(t *testing.T) {
	t.Run("not fired", func(t *testing.T) {
		e := New[string](Config[string]{}).Emitter()
		calls := 0

		e.Emit("other", "")
		result := e.Has("test", func(string) { calls++ })

		assert.False(t, result)
		assert.Equal(t, 0, calls)
	})

	t.Run("fired", func(t *testing.T) {
		e := New[string](Config[string]{}).Emitter()
		calls := 0
		var param string

		e.Emit("test", "payload")
		result := e.Has("test", func(p string) {
			calls++
			param = p
		})

		assert.True(t, result)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "", param, "has callbacks receive no payload")
	})

	t.Run("fired without listener", func(t *testing.T) {
		e := New[string](Config[string]{}).Emitter()

		e.Emit("test", "")

		assert.True(t, e.Has("test"))
		assert.True(t, e.Has("test", nil))
	})
}

func TestEmitterHasAndOn(t *testing.T) {
	t.Run("emitted later", func(t *testing.T) {
		r := New[string](Config[string]{})
		e := r.Emitter()
		calls := 0

		e.Emit("other", "")
		result := e.HasAndOn("test", func(string) { calls++ })
		assert.False(t, result)
		assert.Equal(t, 0, calls)

		e.Emit("test", "")
		assert.Equal(t, 1, calls)
	})

	t.Run("already emitted", func(t *testing.T) {
		r := New[string](Config[string]{})
		e := r.Emitter()
		calls := 0

		e.Emit("test", "")
		result := e.HasAndOn("test", func(string) { calls++ })
		assert.True(t, result)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, r.Len())

		e.Emit("test", "")
		assert.Equal(t, 2, calls)
	})

	t.Run("keeps the tag", func(t *testing.T) {
		r := New[string](Config[string]{})
		e := r.Emitter()
		calls := 0

		e.Emit("test", "")
		assert.True(t, e.HasAndOn("test.tag", func(string) { calls++ }))
		assert.Equal(t, 1, calls)
		assert.Equal(t, []string{"test.tag"}, types(r.Registrations()))

		e.Off(".tag")
		assert.Equal(t, 0, r.Len())
	})
}

func TestEmitterHasAndOne(t *testing.T) {
	t.Run("emitted later", func(t *testing.T) {
		r := New[string](Config[string]{})
		e := r.Emitter()
		calls := 0

		e.Emit("other", "")
		result := e.HasAndOne("test", func(string) { calls++ })
		assert.False(t, result)
		assert.Equal(t, 1, r.Len())

		e.Emit("test", "")
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("already emitted", func(t *testing.T) {
		r := New[string](Config[string]{})
		e := r.Emitter()
		calls := 0

		e.Emit("test", "")
		result := e.HasAndOne("test", func(string) { calls++ })
		assert.True(t, result)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, r.Len())

		e.Emit("test", "")
		assert.Equal(t, 1, calls)
	})
}

func TestEmitterDropsRejectedListener(t *testing.T) {
	var buf bytes.Buffer
	r := New[string](Config[string]{Logger: NewWriterLogger(&buf), Strict: true})

	r.Emitter().On(".tag", func(string) {})
	r.Emitter().One("test", nil)

	assert.Equal(t, 0, r.Len())
	assert.Contains(t, buf.String(), "WARN [component=event_registry]: listener dropped: cannot register listener for '.tag'")
	assert.Contains(t, buf.String(), "listener must not be nil")
}
