// Package report formats a search result for the CLI drivers:
// initial state, initial heuristic value, elapsed time, expanded-node
// count, the solution path with per-state heuristic values, solution
// length, and total cost.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/drehermarco/topspin/topspin"
	"github.com/drehermarco/topspin/topspin/search"
)

// Print writes res to w, one line per field. initial and
// initialH are reported separately since a failed search still owes
// the caller the state and heuristic value it started from.
func Print(w io.Writer, initial topspin.State, initialH int, elapsed time.Duration, res search.Result) {
	fmt.Fprintf(w, "Initial state: %s\n", initial.String())
	fmt.Fprintf(w, "Heuristic value of initial state: %d\n", initialH)
	fmt.Fprintf(w, "%f seconds search time\n", elapsed.Seconds())
	fmt.Fprintf(w, "Number of expanded nodes: %d\n", res.Expanded)

	if !res.Found {
		fmt.Fprintln(w, "No solution")
		return
	}

	fmt.Fprintln(w, "Solution:")
	for _, step := range res.Path {
		fmt.Fprintf(w, "State: %s with heuristic: %d\n", step.State.String(), step.H)
	}
	fmt.Fprintf(w, "Solution length: %d\n", res.Length)
	fmt.Fprintf(w, "Solution cost: %d\n", res.Cost)
}
