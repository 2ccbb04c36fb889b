// Package column defines the column header contract: the props a parent
// passes in, the render model derived from them, and the click-to-callback
// rules. It has no rendering dependencies; internal/ui draws the model in a
// terminal and internal/rendering draws it as HTML.
//
// The header owns no state. Every render is Build(props), and every click is
// Activate(props, control), which only ever calls back into the parent.
package column
