package markov_test

import (
	"errors"
	"fmt"

	"github.com/chiron3/QuantEcon.py/builder"
	"github.com/chiron3/QuantEcon.py/markov"
)

// ExampleRandomMarkovChain draws a 4-state chain with 2 successors per state.
func ExampleRandomMarkovChain() {
	mc, err := markov.RandomMarkovChain(4, builder.WithK(2), builder.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mc.NumStates())

	_, err = markov.RandomMarkovChain(4, builder.WithSparse())
	fmt.Println(errors.Is(err, markov.ErrNotImplemented))
	// Output:
	// 4
	// true
}
