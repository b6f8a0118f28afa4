package coordinate

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Point[T Integer] struct {
	X T
	Y T
}

func NewPoint[T Integer](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Translate returns the point shifted by (dx, dy).
func (p Point[T]) Translate(dx, dy T) Point[T] {
	return Point[T]{X: p.X + dx, Y: p.Y + dy}
}

// AtLeast returns the point with each coordinate raised to lo when below it.
func (p Point[T]) AtLeast(lo T) Point[T] {
	return Point[T]{X: max(p.X, lo), Y: max(p.Y, lo)}
}
