// Package imageio reads source images and writes layout documents.
//
// # Reading Images
//
// [Load] opens a file (or stdin when the path is "-") and [Decode] reads
// from any io.Reader. Both sniff the content before decoding, so a text file
// or an empty stream is refused with errors.ErrCodeUnsupportedImage rather
// than a decoder-specific message:
//
//	src, err := imageio.Load("photo.jpg")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(src.Format, src.Extent())
//
// Supported formats are PNG, JPEG and GIF from the standard library plus
// BMP, TIFF and WebP from golang.org/x/image. JPEG and TIFF EXIF orientation
// is applied on decode, so the extent matches what a viewer shows.
//
// # Layout Documents
//
// A [Document] records a session's rectangles in both coordinate spaces
// along with the image and scale they belong to:
//
//	{
//	  "image": {"path": "photo.jpg", "format": "jpeg", "width": 2560, "height": 1440},
//	  "display": {"width": 1280, "height": 720},
//	  "scale": {"x": 2, "y": 2},
//	  "rects": [{"x": 10, "y": 20, "width": 33, "height": 50, "aspect_ratio": 0.66}],
//	  "source_rects": [{"x": 20, "y": 40, "width": 66, "height": 100, "aspect_ratio": 0.66}]
//	}
//
// Documents are write-only: they are an export for other tools, not a way to
// restore a session. Use [WriteJSON], [WriteYAML], or [Write] with a
// [Format].
package imageio
