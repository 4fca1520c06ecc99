// Package viz is the terminal front end.
//
// The scene is rasterized onto a braille [Canvas], where every character
// cell holds a 2x4 block of dots, and shown next to a stats panel by a
// Bubble Tea [Model]. Each tick of the model runs one driver frame using
// the tick timestamp, so the terminal advances in real time exactly like
// the window front end.
//
// # Key Bindings
//
//	P     - Pause/Resume simulation
//	R     - Reset the ball
//	↑/↓   - Gravity ±100 px/s²
//	←/→   - Restitution ±0.02
//	[ ]   - Select gravity, restitution, friction or drag
//	- =   - Adjust the selected parameter
//	Click - Move the ball and kick it
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
