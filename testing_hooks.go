package eventmgr

import (
	"github.com/stretchr/testify/mock"
)

type mockHooks[V any] struct {
	mock.Mock

	added   []string
	removed []string
}

func (m *mockHooks[V]) OnBeforeAdd(s *Registration[V]) {
	m.added = append(m.added, s.Identifier().String())
	m.MethodCalled("OnBeforeAdd", s)
}

func (m *mockHooks[V]) OnBeforeRemove(s *Registration[V]) {
	m.removed = append(m.removed, s.Identifier().String())
	m.MethodCalled("OnBeforeRemove", s)
}

func (m *mockHooks[V]) config() Config[V] {
	return Config[V]{
		OnBeforeAddListener:    m.OnBeforeAdd,
		OnBeforeRemoveListener: m.OnBeforeRemove,
	}
}
