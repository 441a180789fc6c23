package preview

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// ErrFormat is returned for preview formats other than webp and tga.
var ErrFormat = errors.New("preview: unsupported format")

// Encode writes img to w as "webp" (lossless) or "tga".
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("preview: webp encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("preview: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return nil
}
