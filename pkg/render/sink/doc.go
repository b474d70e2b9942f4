// Package sink encodes composite images and delivers them somewhere.
//
// A [Sink] accepts encoded bytes. Three are provided:
//
//   - [File]: writes to a path.
//   - [Writer]: writes to any io.Writer, typically stdout.
//   - [Clipboard]: places a PNG on the system clipboard.
//
// [Export] encodes an image in the requested [Format] and hands the bytes to
// the sink; the editor uses it for its copy and write keys. [Deliver] takes
// bytes that are already encoded, such as the pipeline's rendered artifacts
// or a layout document. Both report through the observability export hooks:
//
//	n, err := sink.Export(ctx, sink.NewClipboard(), img, sink.FormatPNG)
//	if errors.Recoverable(err) {
//	    // tell the user; the session is unchanged
//	}
//
// Delivery failures are coded errors.ErrCodeSinkRejected (the sink refused
// the data) or errors.ErrCodeSinkUnavailable (the sink could not be reached,
// e.g. no display server for the clipboard). Nothing is retried.
package sink
