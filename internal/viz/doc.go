// Package viz runs the pendulum in the terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: drives one render/advance frame per message and shows energy
//   - [Canvas]: Braille-based pixel canvas the scene is rasterized onto
//   - [Viewport]: maps scene pixels onto canvas dots
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	Q     - Quit
//
// Without a frame rate the next frame is requested as soon as the previous
// one is drawn, so the simulation runs as fast as the event loop dispatches.
package viz
