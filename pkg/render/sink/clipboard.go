package sink

import (
	"context"
	"sync"

	"golang.design/x/clipboard"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
)

// Clipboard places PNG images on the system clipboard.
type Clipboard struct {
	once    sync.Once
	initErr error
	init    func() error
	write   func(clipboard.Format, []byte) <-chan struct{}
}

// NewClipboard returns a sink backed by the system clipboard. The clipboard
// is initialized lazily on the first delivery.
func NewClipboard() *Clipboard {
	return &Clipboard{
		init:  clipboard.Init,
		write: clipboard.Write,
	}
}

func (c *Clipboard) Name() string { return "clipboard" }

// Deliver writes data as a clipboard image. Only PNG is accepted.
func (c *Clipboard) Deliver(ctx context.Context, data []byte, f Format) error {
	if f != FormatPNG {
		return apperr.New(apperr.ErrCodeSinkRejected, "clipboard only accepts png images, got %s", f)
	}
	c.once.Do(func() { c.initErr = c.init() })
	if c.initErr != nil {
		return apperr.Wrap(apperr.ErrCodeSinkUnavailable, c.initErr, "Clipboard is not available.")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// A nil channel means the write was refused; a non-nil one fires later
	// when another program takes the clipboard and is ignored.
	if c.write(clipboard.FmtImage, data) == nil {
		return apperr.New(apperr.ErrCodeSinkRejected, "Clipboard rejected the image.")
	}
	return nil
}
