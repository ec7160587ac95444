package relay

import "maps"

// Metadata defines a key value field received with every message to add more context
// without the need of decoding the payload.
type Metadata map[string]string

// Get returns the metadata value for the given key.
// If the key is not found, an empty string is returned.
func (m Metadata) Get(key string) string {
	if v, ok := m[key]; ok {
		return v
	}

	return ""
}

// Set sets the metadata key to value.
func (m Metadata) Set(key, value string) {
	m[key] = value
}

// Clone returns a copy of the metadata, nil when it is empty.
func (m Metadata) Clone() Metadata {
	if len(m) == 0 {
		return nil
	}

	return maps.Clone(m)
}
