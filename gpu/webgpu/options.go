package webgpu

import (
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func init() {
	// wgpu surfaces are bound to the thread that created them.
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Options steer adapter selection for a Backend.
type Options struct {
	PowerPreference      wgpu.PowerPreference
	ForceFallbackAdapter bool
}

// FromEnv builds Options from the usual wgpu environment variables,
// WGPU_POWER_PREF (low or high) and WGPU_FORCE_FALLBACK_ADAPTER.
func FromEnv() Options {
	var opts Options

	switch strings.ToLower(os.Getenv("WGPU_POWER_PREF")) {
	case "low":
		opts.PowerPreference = wgpu.PowerPreferenceLowPower
	case "high":
		opts.PowerPreference = wgpu.PowerPreferenceHighPerformance
	}

	opts.ForceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

	return opts
}
