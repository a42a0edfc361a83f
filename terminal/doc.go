// Package terminal hosts the simulation on a tcell screen.
//
// Screen presents a render.Canvas cell by cell, overlays a one-line HUD and
// streams tcell events from a poll goroutine. Translate turns those events
// into host actions: pointer samples in surface pixels, resizes, strand count
// changes and quit.
package terminal
