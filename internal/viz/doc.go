// Package viz renders growth results and traces in the terminal.
//
// It is the presentation side of the calculator:
//
//   - [Summary]: styled inputs, final amount and interest earned
//   - [Chart]: asciigraph line chart of a trace
//   - [Reveal]: Bubble Tea program that shows emitted snapshots one by one
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume the reveal
//	S     - Skip to the last snapshot
//	T     - Cycle color themes
//	Q     - Quit
//
// Pacing lives here only. The growth package never sleeps.
package viz
