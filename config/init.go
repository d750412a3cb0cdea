package config

import (
	"fmt"

	"fastcat.org/go/linelen/internal"
)

func Initialize() error {
	internal.CheckLockedDown()
	if data != nil {
		panic(fmt.Errorf("config already initialized"))
	}
	values := make(map[string]any, len(keys))
	for k, kk := range keys {
		values[k] = kk.new()
	}
	if err := load(values); err != nil {
		return err
	}
	data = values
	return nil
}
