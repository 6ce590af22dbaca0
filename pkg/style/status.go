package style

import (
	"github.com/pterm/pterm"
)

// Status describes what a refresh did to the kanshi config.
type Status string

const (
	StatusCreated   Status = "created"   // New profile appended
	StatusRefreshed Status = "refreshed" // Matching profile replaced
	StatusDryRun    Status = "dry-run"   // Nothing written
	StatusMatched   Status = "matched"   // Profile matches the current layout
)

// StatusStyle returns the pterm style used for a status badge.
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusCreated:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusRefreshed:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	case StatusDryRun:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusMatched:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders status as a padded, colored label.
func Badge(status Status) string {
	return StatusStyle(status).Sprint(" " + string(status) + " ")
}
