package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/graphio"
)

// ExampleParse solves a problem read from the classic input format.
func ExampleParse() {
	in := `4 4
1
1 2 4
2 3 -6
3 2 1
1 3 2
`
	p, err := graphio.Parse(strings.NewReader(in))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	g, _ := p.Graph()
	res, _ := bellmanford.ShortestPaths(g, p.Source)
	_ = graphio.WriteText(os.Stdout, res, graphio.DefaultMarkers())

	// Output:
	// 0
	// I
	// I
	// U
}
