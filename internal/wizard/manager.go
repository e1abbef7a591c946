package wizard

import (
	"sync"
)

// session сессия мастера одного пользователя
type session struct {
	mu      sync.Mutex
	machine *Machine
}

// Manager хранит состояния мастера по пользователям.
// Каждый пользователь ведет не больше одной сессии мастера одновременно;
// конкурентные запросы одного пользователя сериализуются на сессии.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewManager создает новый менеджер сессий мастера
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*session),
	}
}

// WithSession выполняет fn над мастером пользователя под блокировкой сессии.
// Сессия создается при первом обращении.
func (m *Manager) WithSession(userID string, fn func(*Machine) error) error {
	s := m.session(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.machine)
}

// Reset сбрасывает мастер пользователя на первый шаг
func (m *Manager) Reset(userID string) {
	s := m.session(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.Reset()
}

// Drop удаляет сессию пользователя целиком
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

func (m *Manager) session(userID string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = &session{machine: NewMachine()}
		m.sessions[userID] = s
	}

	return s
}
