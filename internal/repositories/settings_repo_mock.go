package repositories

import "sync"

// MockSettingsRepository is an in-memory implementation of
// SettingsRepository.
type MockSettingsRepository struct {
	values map[string]string
	mu     sync.RWMutex
}

// NewMockSettingsRepository creates a new instance of MockSettingsRepository.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{
		values: make(map[string]string),
	}
}

// GetAll returns every stored setting.
func (r *MockSettingsRepository) GetAll() (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make(map[string]string, len(r.values))
	for key, value := range r.values {
		values[key] = value
	}
	return values, nil
}

// Set stores a single setting.
func (r *MockSettingsRepository) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}
