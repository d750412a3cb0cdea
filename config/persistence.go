package config

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"fastcat.org/go/linelen/instance"
	"fastcat.org/go/linelen/internal"
)

var loadedComments yaml.CommentMap

// Path is where the config file is loaded from and saved to.
func Path() string {
	return os.ExpandEnv("${HOME}/.config/" + instance.AppName() + ".yaml")
}

func load(values map[string]any) error {
	internal.CheckLockedDown()
	fn := Path()
	f, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // no config file, that's ok
		}
		return fmt.Errorf("error opening config %q: %w", fn, err)
	}
	defer f.Close() //nolint:errcheck
	cm := yaml.CommentMap{}
	d := yaml.NewDecoder(f, yaml.CommentToMap(cm))
	decoded := make(map[string]any, len(keys))
	if err := d.Decode(&decoded); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file
		}
		return fmt.Errorf("error loading config %q: %w", fn, err)
	}

	for k := range decoded {
		if _, ok := keys[k]; !ok {
			return fmt.Errorf("unknown config key %q in %q", k, fn)
		}
	}
	// don't change the in-memory config until we get everything OK
	newValues := make(map[string]any, len(decoded))
	for k, v := range decoded {
		vv, err := keys[k].newFrom(v)
		if err != nil {
			return fmt.Errorf("error loading config key %q in %q: %w", k, fn, err)
		}
		newValues[k] = vv
	}

	maps.Copy(values, newValues)
	loadedComments = cm

	return nil
}

func Save() error {
	internal.CheckLockedDown()
	checkInitialized()
	fn := Path() + ".tmp"
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("error creating config temp file %q: %w", fn, err)
	}
	defer f.Close() //nolint:errcheck

	// don't save default values
	toSave := maps.Clone(data)
	for k, v := range toSave {
		if keys[k].isDefault(v) {
			delete(toSave, k)
		}
	}

	// try to preserve loaded comments
	e := yaml.NewEncoder(f, yaml.WithComment(loadedComments))
	if err := e.Encode(toSave); err != nil {
		return fmt.Errorf("error writing config file %q: %w", fn, err)
	} else if err := f.Sync(); err != nil {
		return fmt.Errorf("error syncing config file %q: %w", fn, err)
	} else if err := f.Close(); err != nil {
		return fmt.Errorf("error closing config file %q: %w", fn, err)
	} else if err := os.Rename(fn, strings.TrimSuffix(fn, ".tmp")); err != nil {
		return fmt.Errorf("error renaming config file %q: %w", fn, err)
	}
	dirty.Store(0)

	return nil
}

// SaveIfDirty saves only when a value has been changed since the last save.
func SaveIfDirty() error {
	if !IsDirty() {
		return nil
	}
	return Save()
}
