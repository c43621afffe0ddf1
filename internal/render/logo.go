package render

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"
)

// LoadLogo reads and decodes the image at path and converts it to RGBA,
// scaling it first if width or height is set. With only one of them set the
// other follows the image's aspect ratio. The image formats that can be read
// are the ones registered with the image package.
func LoadLogo(path string, width, height int) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading logo: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding logo %s: %w", path, err)
	}

	src := img.Bounds()
	w, h := scaledSize(src.Dx(), src.Dy(), width, height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("logo %s (%s) has no pixels", path, format)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == src.Dx() && h == src.Dy() {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	}
	return dst, nil
}

func scaledSize(srcW, srcH, width, height int) (int, int) {
	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0 && srcW > 0:
		return width, srcH * width / srcW
	case height > 0 && srcH > 0:
		return srcW * height / srcH, height
	default:
		return srcW, srcH
	}
}
