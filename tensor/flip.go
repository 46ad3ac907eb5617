package tensor

// FlipLeftRight returns a copy of src mirrored along the width axis.
func FlipLeftRight[T Number](src *Image[T]) *Image[T] {
	dst := &Image[T]{h: src.h, w: src.w, c: src.c, data: make([]T, len(src.data))}
	rowLen := src.w * src.c
	for row := 0; row < src.h; row++ {
		base := row * rowLen
		for col := 0; col < src.w; col++ {
			from := base + (src.w-1-col)*src.c
			to := base + col*src.c
			copy(dst.data[to:to+src.c], src.data[from:from+src.c])
		}
	}

	return dst
}

// FlipUpDown returns a copy of src mirrored along the height axis.
func FlipUpDown[T Number](src *Image[T]) *Image[T] {
	dst := &Image[T]{h: src.h, w: src.w, c: src.c, data: make([]T, len(src.data))}
	rowLen := src.w * src.c
	for row := 0; row < src.h; row++ {
		from := (src.h - 1 - row) * rowLen
		to := row * rowLen
		copy(dst.data[to:to+rowLen], src.data[from:from+rowLen])
	}

	return dst
}
