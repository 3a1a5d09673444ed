// Package terminal is an interactive tcell front-end for a controller.Controller.
//
// Each grid cell is drawn as a block Gap columns wide and one terminal row
// tall, so a grid built with width rows*Gap maps terminal positions to
// pointer pixels as (column, row*Gap).
//
// Controls:
//
//	left click / drag   start, end, then barriers (see package controller)
//	right click / drag  erase
//	space               run the search
//	r                   reset search marks
//	c                   clear the grid
//	q, Esc, Ctrl-C      quit (also while a search is running)
//
// Events are read by a feeder goroutine into a buffered channel. While a
// search runs, the render step drains that channel without blocking and only
// honors quit and resize, so every grid mutation happens on the goroutine
// that called Run.
package terminal
