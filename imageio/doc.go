// Package imageio moves images between files and tensor.Image.
//
// Decoding accepts PNG, JPEG, GIF, TIFF and BMP. Grayscale sources become
// single-channel tensors, everything else becomes non-premultiplied RGBA
// (C=4). Decode keeps 8 bits per sample; Decode16 keeps 16.
//
// Encoding accepts 1, 3 or 4 channels and writes PNG, JPEG, TIFF or BMP,
// picked by file extension in Save. Samples are rounded and clamped to the
// target bit depth, so float labels in [0,255] round-trip exactly.
package imageio
