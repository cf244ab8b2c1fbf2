package engine

import (
	"fmt"
	"testing"

	"github.com/drehermarco/topspin/topspin"
	"github.com/rs/zerolog"
)

func ExampleRunAStar() {
	initial, _ := topspin.NewState([]int{2, 1, 4, 3})
	space, _ := topspin.NewSpace(4, 4, initial, 0)
	res, _ := RunAStar(space, "gap", zerolog.Nop())
	fmt.Println(res.Found, res.Length)
	// Output: true 1
}

// twentyTileFixture is a fixed N=20, K=4 instance kept as a
// benchmark rather than an always-run test: at N=20 search time
// depends heavily on which heuristic is selected.
var twentyTileFixture = []int{1, 20, 19, 13, 7, 6, 4, 11, 5, 2, 3, 10, 18, 17, 14, 16, 12, 15, 8, 9}

func BenchmarkAStarTwentyTileFixtureGap(b *testing.B) {
	initial, err := topspin.NewState(twentyTileFixture)
	if err != nil {
		b.Fatal(err)
	}
	space, err := topspin.NewSpace(len(twentyTileFixture), 4, initial, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RunAStar(space, "gap", zerolog.Nop()); err != nil {
			b.Fatal(err)
		}
	}
}
