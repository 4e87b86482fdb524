package mathtool

import "errors"

var (
	ErrNegative       = errors.New("values must not be negative")
	ErrWidthOverLimit = errors.New("width must not exceed length")
)

// RectPerimeter returns the perimeter of a width×length rectangle.
// By convention the width is the shorter side; passing width > length is
// rejected as swapped input.
func RectPerimeter(width, length float64) (float64, error) {
	if width < 0 || length < 0 {
		return 0, ErrNegative
	}
	if width > length {
		return 0, ErrWidthOverLimit
	}
	return 2 * (width + length), nil
}

// RectArea returns the area of a width×length rectangle.
func RectArea(width, length float64) (float64, error) {
	if width < 0 || length < 0 {
		return 0, ErrNegative
	}
	return width * length, nil
}

// BoxVolume returns the volume of a rectangular box.
func BoxVolume(width, length, height float64) (float64, error) {
	if width < 0 || length < 0 || height < 0 {
		return 0, ErrNegative
	}
	return width * length * height, nil
}

// PicksArea computes the area of a lattice polygon from Pick's theorem:
// A = I + B/2 - 1, where I is the interior and B the boundary lattice
// point count.
func PicksArea(interior, boundary int) (float64, error) {
	if interior < 0 || boundary < 0 {
		return 0, ErrNegative
	}
	return float64(interior) + float64(boundary)/2 - 1, nil
}
