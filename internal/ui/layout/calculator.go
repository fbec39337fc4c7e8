// Package layout provides pure functions for UI dimension calculations.
package layout

// MinHelpHeight is the smallest window height that can show the help
// popup.
const MinHelpHeight = 8

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight    int // 0 when a single document is open
	StatusBarHeight int
}

// ContentHeight calculates the rows left for the pager: the terminal
// height minus header and status bar, never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.StatusBarHeight, 0)
}

// ContentRow converts a terminal row to a pager row. It returns false for
// rows outside the pager.
func ContentRow(y, windowHeight int, opts ContentOpts) (int, bool) {
	row := y - opts.HeaderHeight
	if row < 0 || row >= ContentHeight(windowHeight, opts) {
		return row, false
	}
	return row, true
}
