package repository

// SettingRepository is a key/value store for state kept outside the domain
// tables (backoff counters, sync stamps).
type SettingRepository interface {
	// Get returns "" for a missing key.
	Get(key string) (string, error)
	Put(key, value string) error
	// Delete is a no-op for a missing key.
	Delete(keys ...string) error
}
