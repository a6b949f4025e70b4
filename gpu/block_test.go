package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockOnResolvedFutureNeverPollsDevice(t *testing.T) {
	dev := &fakeDevice{}
	promise := &Promise[int]{}
	promise.Resolve(42)

	got := BlockOn(dev, promise)

	assert.Equal(t, 42, got)
	assert.Equal(t, 0, dev.polls)
}

func TestBlockOnWaitsForDeviceProgress(t *testing.T) {
	// The completion callback fires on the second progress signal,
	// mimicking a buffer map that needs two rounds of device work.
	dev := &fakeDevice{}
	promise := &Promise[string]{}

	dev.onPoll = func() {
		if dev.polls == 2 {
			promise.Resolve("mapped")
		}
	}

	got := BlockOn(dev, promise)

	assert.Equal(t, "mapped", got)
	assert.Equal(t, 2, dev.polls)
}

func TestBlockOnPollsFutureBeforeDevice(t *testing.T) {
	dev := &fakeDevice{}
	fut := &countingFuture{ready: 1}

	BlockOn(dev, fut)

	// One poll finds the future ready, the device is never touched.
	assert.Equal(t, 1, fut.polls)
	assert.Equal(t, 0, dev.polls)
}

type countingFuture struct {
	polls int
	ready int
}

func (f *countingFuture) Poll() (struct{}, bool) {
	f.polls++
	return struct{}{}, f.polls >= f.ready
}

func TestPromiseStartsPending(t *testing.T) {
	promise := &Promise[int]{}

	_, done := promise.Poll()
	require.False(t, done)

	promise.Resolve(7)

	value, done := promise.Poll()
	assert.True(t, done)
	assert.Equal(t, 7, value)
}

func TestPromiseResolveTwicePanics(t *testing.T) {
	promise := &Promise[int]{}
	promise.Resolve(1)

	assert.Panics(t, func() {
		promise.Resolve(2)
	})
}
