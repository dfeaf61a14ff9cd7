package buffer

// Element is the set of sample types a Buffer can hold.
type Element interface {
	~float64 | ~complex128
}

// Buffer wraps a sample slice with reuse-friendly semantics.
type Buffer[T Element] struct {
	data []T
}

// New returns a zero-filled Buffer of the given length.
func New[T Element](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{data: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[T Element](s []T) *Buffer[T] {
	return &Buffer[T]{data: s}
}

// Data returns the underlying slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Len returns the current number of samples.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.data)
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		s := make([]T, n)
		copy(s, b.data)
		b.data = s
	}
	if n > oldLen {
		clear(b.data[oldLen:])
	}
}

// Zero sets all samples to 0.
func (b *Buffer[T]) Zero() {
	clear(b.data)
}

// Split returns k consecutive sub-slices of length n carved from the buffer,
// resizing it to k*n first. The sub-slices share the buffer's memory and are
// zeroed.
func (b *Buffer[T]) Split(k, n int) [][]T {
	if k <= 0 || n < 0 {
		return nil
	}
	b.Resize(k * n)
	b.Zero()

	out := make([][]T, k)
	for i := range out {
		out[i] = b.data[i*n : (i+1)*n : (i+1)*n]
	}
	return out
}
