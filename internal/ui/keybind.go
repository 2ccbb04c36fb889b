package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty applies to every mode
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC m" is space then m.
// Single keys use tea.KeyMsg.String() form: "q", "esc", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq in every mode, replacing any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindForMode(seq, cmd, desc)
}

// BindForMode registers seq for the listed modes only. With no modes it
// behaves like Bind.
func (r *KeybindRegistry) BindForMode(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command for seq in mode, or nil if none applies.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the next keys available after currentSeq ("SPC" when
// empty) in mode, mapped to their descriptions.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	if currentSeq == "" {
		currentSeq = "SPC"
	}
	prefix := normalizeSeq(currentSeq) + " "
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) || !b.appliesTo(mode) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		switch {
		case r.HasPrefix(prefix + next):
			out[next] = next + "…"
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

func (b binding) appliesTo(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// normalizeSeq converts tea key strings to canonical form ("space" -> "SPC").
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	if strings.HasPrefix(seq, " ") && len(parts) == 0 {
		return "SPC"
	}
	return strings.Join(parts, " ")
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler tracks leader state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader; space is " "
	LeaderWaiting bool     // a leader sequence is in progress
	Buffer        []string // sequence typed so far, e.g. ["SPC"]
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderKey: " "}
}

// Sequence returns the leader sequence typed so far.
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

// Handle processes a key in mode. consumed is true when the key belongs to
// the keybind system and must not reach the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := h.Sequence()
		if c := h.Registry.Lookup(seq, mode); c != nil {
			h.reset()
			return true, c
		}
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		// Unknown sequence: swallow the key and leave leader mode.
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(s, mode); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}
