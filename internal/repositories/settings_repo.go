package repositories

// SettingsRepository defines the interface for settings data access.
type SettingsRepository interface {
	GetAll() (map[string]string, error)
	Set(key, value string) error
}
