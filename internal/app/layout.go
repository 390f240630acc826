package app

// LayoutMode represents the display width category for responsive layout.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // <40 chars: icons only in tab bar
	LayoutMedium                   // 40-79: titles, compact status bar
	LayoutWide                     // 80+: titles with separators, full status bar
)

// GetLayoutMode returns the appropriate layout mode for the given terminal width.
func GetLayoutMode(width int) LayoutMode {
	switch {
	case width < 40:
		return LayoutNarrow
	case width < 80:
		return LayoutMedium
	default:
		return LayoutWide
	}
}

// Chrome rows: one tab bar above the pane, one status bar below it.
const (
	tabBarHeight    = 1
	statusBarHeight = 1
)

// ContentHeight returns the rows left for the active pane.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-tabBarHeight-statusBarHeight, 0)
}
