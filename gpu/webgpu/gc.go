package webgpu

import (
	"log/slog"
	"reflect"
	"runtime"
)

type releaser interface{ Release() }

// registerWithGC calls Release on value once it is garbage collected.
func registerWithGC[T releaser](value T) T {
	if runtime.GOOS == "js" {
		// js values are garbage collected anyways, no need to
		// register the Finalizer
		return value
	}

	runtime.SetFinalizer(value, releaseNow[T])

	return value
}

func releaseNow[T releaser](value T) {
	typ := reflect.TypeOf(value).String()
	slog.Debug("Releasing garbage collected instance", slog.String("type", typ))

	value.Release()
}
