package app

import (
	"fmt"
	"sort"
	"strings"
)

// KeyValues collects repeated key=value flags.
type KeyValues map[string]string

func (kv KeyValues) String() string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + kv[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value. Commas separate several pairs.
func (kv *KeyValues) Set(s string) error {
	if *kv == nil {
		*kv = KeyValues{}
	}
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", pair)
		}
		(*kv)[key] = strings.TrimSpace(value)
	}
	return nil
}
