package ui

// ShowMarkupMsg opens the HTML preview of the focused lane's header (SPC m).
type ShowMarkupMsg struct{}

// ShowActivityMsg opens the recent interaction list (SPC a).
type ShowActivityMsg struct{}

// DismissOverlayMsg closes the top overlay.
type DismissOverlayMsg struct{}
