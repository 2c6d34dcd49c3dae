package compositor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"io"

	// Source formats accepted besides JPEG
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// Decode reads an image in any registered format (JPEG, PNG, GIF, BMP,
// TIFF, WebP). It returns a *DecodeError on failure.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}
	return img, format, nil
}

// DecodeBytes decodes an in-memory image
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", &DecodeError{Err: fmt.Errorf("empty input")}
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes img as a JPEG of the given quality. It returns an
// *EncodeError on failure.
func Encode(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// EncodeBytes encodes img as JPEG into a new byte slice
func EncodeBytes(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Flatten draws img over a solid background at its native size, dropping
// transparency the way a JPEG conversion needs
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// Resize scales img onto a background-filled canvas of width x height
// using Catmull-Rom interpolation
func Resize(img image.Image, width, height int, bg color.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return out, nil
}

// Convert decodes data in any supported format and re-encodes it as a
// flattened JPEG, optionally resized
func Convert(data []byte, width, height int, opts Options) ([]byte, image.Rectangle, error) {
	opts = opts.withDefaults()

	src, _, err := DecodeBytes(data)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	var out *image.RGBA
	if width > 0 && height > 0 {
		out, err = Resize(src, width, height, opts.Background)
		if err != nil {
			return nil, image.Rectangle{}, err
		}
	} else {
		out = Flatten(src, opts.Background)
	}

	encoded, err := EncodeBytes(out, opts.Quality)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	return encoded, out.Bounds(), nil
}
