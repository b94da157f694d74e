package storage

// MemoryBackend живет только в пределах процесса
type MemoryBackend struct {
	data map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(key, val string) error {
	m.data[key] = val
	return nil
}
