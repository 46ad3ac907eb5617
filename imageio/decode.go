package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF

	"github.com/katalvlaran/segaug/tensor"
)

// Bit depths reported by Depth.
const (
	Depth8  = 8
	Depth16 = 16
)

// Decode reads one image and returns it as 8-bit samples together with the
// format name reported by image.Decode. A 16-bit source fails with
// ErrPrecisionLoss instead of being truncated.
func Decode(r io.Reader) (*tensor.Image[uint8], string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	if is16(src.ColorModel()) {
		return nil, format, fmt.Errorf("imageio: %s: %w", format, ErrPrecisionLoss)
	}
	img, err := FromImage(src)
	if err != nil {
		return nil, "", err
	}

	return img, format, nil
}

// Decode16 is Decode with 16-bit samples. 8-bit sources are widened
// (v → v·257), so any file can be read this way.
func Decode16(r io.Reader) (*tensor.Image[uint16], string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	img, err := FromImage16(src)
	if err != nil {
		return nil, "", err
	}

	return img, format, nil
}

// Load decodes the file at path with Decode.
func Load(path string) (*tensor.Image[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// Load16 decodes the file at path with Decode16.
func Load16(path string) (*tensor.Image[uint16], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	img, _, err := Decode16(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// Depth reports whether the file at path stores 8- or 16-bit samples,
// reading only its header.
func Depth(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, fmt.Errorf("imageio: %s: %w", path, err)
	}
	if is16(cfg.ColorModel) {
		return Depth16, nil
	}

	return Depth8, nil
}

// FromImage converts src to an 8-bit tensor: C=1 for gray models, C=4 RGBA
// otherwise. 16-bit sources keep the high byte.
func FromImage(src image.Image) (*tensor.Image[uint8], error) {
	b := src.Bounds()
	h, w := b.Dy(), b.Dx()
	if isGray(src.ColorModel()) {
		out, err := tensor.New[uint8](h, w, 1)
		if err != nil {
			return nil, fmt.Errorf("imageio: %w", err)
		}
		data := out.Data()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				data[y*w+x] = color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			}
		}
		return out, nil
	}

	out, err := tensor.New[uint8](h, w, 4)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	data := out.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			o := (y*w + x) * 4
			data[o], data[o+1], data[o+2], data[o+3] = c.R, c.G, c.B, c.A
		}
	}

	return out, nil
}

// FromImage16 converts src to a 16-bit tensor with the channel rules of
// FromImage.
func FromImage16(src image.Image) (*tensor.Image[uint16], error) {
	b := src.Bounds()
	h, w := b.Dy(), b.Dx()
	if isGray(src.ColorModel()) {
		out, err := tensor.New[uint16](h, w, 1)
		if err != nil {
			return nil, fmt.Errorf("imageio: %w", err)
		}
		data := out.Data()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				data[y*w+x] = color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16).Y
			}
		}
		return out, nil
	}

	out, err := tensor.New[uint16](h, w, 4)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	data := out.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA64Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			o := (y*w + x) * 4
			data[o], data[o+1], data[o+2], data[o+3] = c.R, c.G, c.B, c.A
		}
	}

	return out, nil
}

func isGray(m color.Model) bool {
	return m == color.GrayModel || m == color.Gray16Model
}

func is16(m color.Model) bool {
	return m == color.Gray16Model || m == color.RGBA64Model || m == color.NRGBA64Model
}
