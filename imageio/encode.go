package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/segaug/tensor"
)

// Format names accepted by Encode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatTIFF = "tiff"
	FormatBMP  = "bmp"
)

// FormatFor maps a file extension to a format name.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("imageio: extension %q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}

// ToImage converts img to an 8-bit image.Image. One channel gives
// *image.Gray, three or four give *image.NRGBA (opaque alpha for three).
// Samples are rounded and clamped to [0,255].
func ToImage[T tensor.Number](img *tensor.Image[T]) (image.Image, error) {
	if err := tensor.ValidateImage(img); err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	h, w, c := img.Height(), img.Width(), img.Channels()
	src := img.Data()
	rect := image.Rect(0, 0, w, h)
	switch c {
	case 1:
		out := image.NewGray(rect)
		for i, v := range src {
			out.Pix[(i/w)*out.Stride+i%w] = to8(v)
		}
		return out, nil
	case 3, 4:
		out := image.NewNRGBA(rect)
		for p := 0; p < h*w; p++ {
			o := (p/w)*out.Stride + (p%w)*4
			px := src[p*c : (p+1)*c]
			out.Pix[o], out.Pix[o+1], out.Pix[o+2] = to8(px[0]), to8(px[1]), to8(px[2])
			out.Pix[o+3] = 0xff
			if c == 4 {
				out.Pix[o+3] = to8(px[3])
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("imageio: %d channels: %w", c, ErrUnsupportedChannels)
	}
}

// ToImage16 is ToImage with 16-bit output: *image.Gray16 or
// *image.NRGBA64, samples clamped to [0,65535].
func ToImage16[T tensor.Number](img *tensor.Image[T]) (image.Image, error) {
	if err := tensor.ValidateImage(img); err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	h, w, c := img.Height(), img.Width(), img.Channels()
	src := img.Data()
	rect := image.Rect(0, 0, w, h)
	switch c {
	case 1:
		out := image.NewGray16(rect)
		for i, v := range src {
			out.SetGray16(i%w, i/w, color.Gray16{Y: to16(v)})
		}
		return out, nil
	case 3, 4:
		out := image.NewNRGBA64(rect)
		for p := 0; p < h*w; p++ {
			px := src[p*c : (p+1)*c]
			a := uint16(math.MaxUint16)
			if c == 4 {
				a = to16(px[3])
			}
			out.SetNRGBA64(p%w, p/w, color.NRGBA64{R: to16(px[0]), G: to16(px[1]), B: to16(px[2]), A: a})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("imageio: %d channels: %w", c, ErrUnsupportedChannels)
	}
}

// Encode writes img to w in the named format. A uint16 tensor is written
// with 16-bit samples; every other element type goes through ToImage.
// JPEG and BMP have no 16-bit form and reject uint16 tensors with
// ErrPrecisionLoss.
func Encode[T tensor.Number](w io.Writer, img *tensor.Image[T], format string) error {
	var (
		m   image.Image
		err error
	)
	if _, wide := any(img).(*tensor.Image[uint16]); wide {
		if format == FormatJPEG || format == FormatBMP {
			return fmt.Errorf("imageio: encode %s: %w", format, ErrPrecisionLoss)
		}
		m, err = ToImage16(img)
	} else {
		m, err = ToImage(img)
	}
	if err != nil {
		return err
	}
	switch format {
	case FormatPNG:
		err = png.Encode(w, m)
	case FormatJPEG:
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
	case FormatTIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		err = bmp.Encode(w, m)
	default:
		return fmt.Errorf("imageio: format %q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}

	return nil
}

// Save encodes img into path, choosing the format from the extension.
func Save[T tensor.Number](path string, img *tensor.Image[T]) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("imageio: %w", cerr)
		}
	}()

	return Encode(f, img, format)
}

func to8[T tensor.Number](v T) uint8 {
	f := math.Round(float64(v))
	switch {
	case f <= 0 || math.IsNaN(f):
		return 0
	case f >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(f)
	}
}

func to16[T tensor.Number](v T) uint16 {
	f := math.Round(float64(v))
	switch {
	case f <= 0 || math.IsNaN(f):
		return 0
	case f >= math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(f)
	}
}
