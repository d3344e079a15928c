package series_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/approx/series"
)

// ExamplePi prints the four-term Leibniz partial sum.
func ExamplePi() {
	pi, err := series.Pi(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f\n", pi)
	// Output: 2.8952
}

// ExampleAtan converges quickly for small |x|.
func ExampleAtan() {
	v, err := series.Atan(0.5, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", v)
	// Output: 0.463648
}

// ExampleAtan_outOfDomain shows the sentinel for |x| >= 1.
func ExampleAtan_outOfDomain() {
	_, err := series.Atan(1, 100)
	fmt.Println(errors.Is(err, series.ErrOutOfDomain))
	fmt.Println(err)
	// Output:
	// true
	// Atan: x=1: series: invalid argument: x must lie in (-1, 1)
}

// ExampleAddAtan adds two angles with a single arctangent evaluation.
func ExampleAddAtan() {
	v, err := series.AddAtan(0.3, 0.4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", v)
	// Output: 0.671963
}
