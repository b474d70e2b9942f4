package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLayoutHooks{}
	l.OnImageLoaded(3840, 2160, 1280, 720)
	l.OnLayout("shuffle", 5, 0)

	i := NoopInteractionHooks{}
	i.OnGestureStart("drag", 0)
	i.OnGestureEnd("drag", 0)

	e := NoopExportHooks{}
	e.OnExportStart(ctx, "clipboard", "png")
	e.OnExportComplete(ctx, "clipboard", "png", 1024, time.Second, errors.New("rejected"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	assert.IsType(t, NoopLayoutHooks{}, Layout())
	assert.IsType(t, NoopInteractionHooks{}, Interaction())
	assert.IsType(t, NoopExportHooks{}, Export())

	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	assert.Same(t, customLayout, Layout())

	customInteraction := &testInteractionHooks{}
	SetInteractionHooks(customInteraction)
	assert.Same(t, customInteraction, Interaction())

	customExport := &testExportHooks{}
	SetExportHooks(customExport)
	assert.Same(t, customExport, Export())

	Reset()
	assert.IsType(t, NoopLayoutHooks{}, Layout())
	assert.IsType(t, NoopExportHooks{}, Export())
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)
	SetLayoutHooks(nil)
	SetInteractionHooks(nil)
	SetExportHooks(nil)

	assert.Same(t, custom, Layout())
	assert.IsType(t, NoopInteractionHooks{}, Interaction())
}

// Test implementations
type testLayoutHooks struct{ NoopLayoutHooks }
type testInteractionHooks struct{ NoopInteractionHooks }
type testExportHooks struct{ NoopExportHooks }
