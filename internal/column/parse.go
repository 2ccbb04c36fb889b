package column

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPreset    = errors.New("invalid preset")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrInvalidViewMode  = errors.New("invalid view mode")
)

// ParsePreset accepts "P1", "P2", "P3" (case-insensitive) or "" for none.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return PresetNone, nil
	case "P1":
		return PresetP1, nil
	case "P2":
		return PresetP2, nil
	case "P3":
		return PresetP3, nil
	}
	return PresetNone, fmt.Errorf("%w: %q", ErrInvalidPreset, s)
}

// ParseSortDirection accepts "asc" or "desc".
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// ParseViewMode accepts "grid", "list", or "" (grid).
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return ViewGrid, nil
	case "list":
		return ViewList, nil
	}
	return ViewGrid, fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
}
