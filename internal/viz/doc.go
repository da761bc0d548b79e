// Package viz draws the symbol wheel in the terminal.
//
// [Model] is a Bubble Tea program that runs an animator against a
// sink.Board and redraws the wheel from the board on every frame.
// [WheelView] renders a single snapshot onto a Braille [Canvas] and can be
// used on its own for static output.
//
// # Key Bindings
//
//	Space - Pause, or resume from the next step
//	R     - Restart from the first step
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
