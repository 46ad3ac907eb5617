// Package mask derives bounding boxes from binary segmentation masks.
//
// A mask is a single-channel tensor.Image; a pixel is active when its value
// is strictly positive. Boxes are expressed in normalised coordinates, where
// 0 is the first row/column and 1 the last, which is the convention of most
// detection heads:
//
//	box, err := mask.TightBox(lbl)       // minimal enclosing rectangle
//	box, err = mask.LooseBox(lbl, 0.05)  // grown by 5% per side, clamped to [0,1]
//	boxes, err := mask.ComponentBoxes(lbl, mask.Conn8) // one box per object
package mask
