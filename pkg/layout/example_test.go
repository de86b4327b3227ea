package layout_test

import (
	"fmt"

	"github.com/matzehuels/paperbox/pkg/layout"
)

func ExampleGenerate() {
	cfg := layout.DefaultConfig()
	l, err := layout.Generate(layout.Dimensions{Width: 100, Height: 50, Depth: 30}, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cuts=%d folds=%d\n", l.Count(layout.Cut), l.Count(layout.Fold))
	fmt.Printf("page %.1f x %.1f pt\n", l.PageWidth, l.PageHeight)
	// Output:
	// cuts=20 folds=4
	// page 510.2 x 368.5 pt
}

func ExampleGenerate_invalid() {
	_, err := layout.Generate(layout.Dimensions{Width: 0, Height: 50, Depth: 30}, layout.DefaultConfig())
	fmt.Println(err)
	// Output:
	// INVALID_DIMENSION: width must be greater than zero, got 0
}
