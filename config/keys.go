package config

import (
	"fmt"
	"maps"
	"slices"
	"sync/atomic"

	"fastcat.org/go/linelen/internal"
)

var (
	keys  = map[string]anyConfigKey{}
	data  map[string]any // set non-nil once in Initialize
	dirty atomic.Int32
)

type anyConfigKey struct {
	key       interface{ Name() string }
	isDefault func(value any) bool
	new       func() any
	newFrom   func(value any) (any, error)
	parse     func(text string) (any, error)
}

type ConfigKey[T any] interface {
	Name() string
	New() T
	// NewFrom converts a value decoded from YAML.
	NewFrom(value any) (T, error)
	// Parse converts a value given on the command line.
	Parse(text string) (T, error)
	IsDefault(value T) bool
}

func AddKey[T any](key ConfigKey[T]) {
	internal.CheckCanCustomize()
	name := key.Name()
	if _, ok := keys[name]; ok {
		panic(fmt.Errorf("config key %q already registered", name))
	}
	keys[name] = anyConfigKey{
		key,
		func(value any) bool { return key.IsDefault(value.(T)) },
		func() any { return key.New() },
		func(value any) (any, error) { return key.NewFrom(value) },
		func(text string) (any, error) { return key.Parse(text) },
	}
}

func SetDirty() {
	dirty.Add(1)
}

func IsDirty() bool {
	return dirty.Load() > 0
}

func Get[T any](key ConfigKey[T]) T {
	checkInitialized()
	if keys[key.Name()].key != key {
		panic(fmt.Errorf("incorrect config key for %q", key.Name()))
	}
	return data[key.Name()].(T)
}

// Set parses text for the named key and stores it in memory. Call [Save] to
// persist it.
func Set(name, text string) error {
	checkInitialized()
	k, ok := keys[name]
	if !ok {
		return fmt.Errorf("unknown config key %q", name)
	}
	v, err := k.parse(text)
	if err != nil {
		return fmt.Errorf("invalid value for config key %q: %w", name, err)
	}
	data[name] = v
	SetDirty()
	return nil
}

type Entry struct {
	Name      string
	Value     any
	IsDefault bool
}

// Entries lists every registered key with its current value, sorted by name.
func Entries() []Entry {
	checkInitialized()
	entries := make([]Entry, 0, len(keys))
	for _, name := range slices.Sorted(maps.Keys(keys)) {
		v := data[name]
		entries = append(entries, Entry{name, v, keys[name].isDefault(v)})
	}
	return entries
}

func checkInitialized() {
	if data == nil {
		panic(fmt.Errorf("config not initialized"))
	}
}
