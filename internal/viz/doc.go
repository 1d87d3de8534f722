// Package viz provides terminal rendering for step sequences.
//
// The interactive player is a Bubble Tea program driven by a
// playback.Controller; bars are colored by the classes the highlight
// package derives for each step. Plain helpers ([FormatStep], [Chart])
// serve the non-interactive commands.
//
// # Key Bindings
//
//	Space  - Play/Pause
//	←/H    - Step back
//	→/L    - Step forward
//	g/G    - Jump to start/end
//	+/-    - Faster/slower
//	T      - Cycle color themes
//	?      - Show help overlay
//	Q      - Quit
package viz
