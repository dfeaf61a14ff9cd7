package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-imgfft/dsp/buffer"
)

func ExampleBuffer_Split() {
	b := buffer.New[float64](0)

	parts := b.Split(2, 3)
	parts[0][0] = 1
	parts[1][2] = 2

	fmt.Println(b.Data())
	fmt.Println(b.Len())

	// Output:
	// [1 0 0 0 0 2]
	// 6
}
