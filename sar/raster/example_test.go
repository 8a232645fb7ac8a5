package raster_test

import (
	"fmt"

	"github.com/cwbudde/algo-sar/sar/raster"
)

func ExampleAmplitude() {
	c, _ := raster.NewComplex(1, 2)
	c.Set(0, 0, complex(3, 4))
	c.Set(0, 1, complex(0, -2))

	amp := raster.Amplitude(c)
	fmt.Printf("%.1f %.1f\n", amp.At(0, 0), amp.At(0, 1))
	// Output:
	// 5.0 2.0
}

func ExampleNewComplexFromPlanes() {
	i, _ := raster.NewPlaneFromData(1, 2, []float64{1, 0})
	q, _ := raster.NewPlaneFromData(1, 2, []float64{0, 1})

	c, err := raster.NewComplexFromPlanes(i, q)
	fmt.Println(err, c.At(0, 1))
	// Output:
	// <nil> (0+1i)
}
