package core

import (
	"strings"

	"github.com/pkg/errors"
)

// KeyValues is a repeatable flag collecting key=value overrides for a sim
// factory.
type KeyValues []string

// String implements flag.Value.
func (l *KeyValues) String() string {
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KeyValues) Set(value string) error {
	if !strings.Contains(value, "=") {
		return errors.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the overrides as a factory config map; later keys win.
func (l KeyValues) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}
