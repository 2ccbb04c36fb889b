// Package ui is the terminal front end of pulseboard, built on Bubble Tea.
//
// Pieces:
//   - ColumnHeader: the column header widget (title, count, sort toggle,
//     P1/P2/P3 presets, toolbar) with mouse hit regions and a keyboard cursor
//   - BoardView: lanes of pairs, each under a ColumnHeader; owns sort,
//     preset and view-mode state and feeds it back to the headers
//   - View, Panel, Layout: composition primitives the board is built from
//   - FocusManager: tab focus across lanes
//   - OverlayStack: the markup and activity popups
//   - AppModel: root model with SPC leader keybinds
package ui
