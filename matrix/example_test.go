package matrix_test

import (
	"fmt"

	"github.com/chiron3/QuantEcon.py/matrix"
)

// ExampleCSR_ToDense builds a 2×3 CSR and densifies it.
func ExampleCSR_ToDense() {
	sp, err := matrix.NewCSR(2, 3, []int{0, 2, 3}, []int{2, 1, 0}, []float64{0.5, 0.5, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	d, _ := sp.ToDense()
	fmt.Print(d)
	fmt.Println(matrix.ValidateStochastic(sp))
	// Output:
	// [0, 0.5, 0.5]
	// [1, 0, 0]
	// <nil>
}
