package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var colorEnabled = detectColor()

// detectColor honors NO_COLOR and the terminal's reported capabilities.
func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// ColorEnabled reports whether output styling is active.
func ColorEnabled() bool {
	return colorEnabled
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// ColorSuccess colors success markers green
func ColorSuccess(text string) string {
	return render(successStyle, text)
}

// ColorWarn colors warning text yellow
func ColorWarn(text string) string {
	return render(warnStyle, text)
}

// ColorError colors error text red
func ColorError(text string) string {
	return render(errorStyle, text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return render(dimStyle, text)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return render(currentStyle, branchName+" (current)")
	}
	return render(branchStyle, branchName)
}

// ColorHash colors an abbreviated commit hash
func ColorHash(text string) string {
	return render(hashStyle, text)
}
