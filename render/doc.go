// Package render turns grid cell states into something a person can look at.
// It is the presentation side of the State tag: the grid and search packages
// know nothing about colors.
//
// Outputs:
//
//   - Text: a block per cell, colored with lipgloss, or plain glyphs
//     ('.', '#', 'S', 'E', 'o', 'x', '*') for logs, tests and clipboards.
//   - PNG: a gg-drawn image with grid lines and an optional caption.
//   - FrameRecorder and TextRenderer: astar.Renderer implementations that
//     emit one PNG file or one text frame per render call.
package render
