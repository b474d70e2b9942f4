package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureStatus(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := statusOut
	statusOut = &buf
	t.Cleanup(func() { statusOut = old })
	return &buf
}

func TestSpinnerDrawsAfterDelay(t *testing.T) {
	buf := captureStatus(t)
	s := newSpinner("Rendering...")
	s.Start()
	time.Sleep(spinnerDelay + 2*spinnerInterval)
	s.Stop()

	assert.Contains(t, buf.String(), "Rendering...")
	assert.False(t, s.Cancelled())
}

func TestSpinnerFastStopDrawsNothing(t *testing.T) {
	buf := captureStatus(t)
	s := newSpinner("Rendering...")
	s.Start()
	s.Stop()
	assert.Zero(t, buf.Len())
}

func TestSpinnerWithContext(t *testing.T) {
	captureStatus(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(20 * time.Millisecond)

	assert.True(t, s.Cancelled())
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	captureStatus(t)
	s := newSpinner("Testing idempotent stop...")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessages(t *testing.T) {
	buf := captureStatus(t)

	s := newSpinner("working")
	s.Start()
	s.StopWithSuccess("Done!")

	s = newSpinner("working")
	s.Start()
	s.StopWithError("Failed!")

	assert.Contains(t, buf.String(), "Done!")
	assert.Contains(t, buf.String(), "Failed!")
}
