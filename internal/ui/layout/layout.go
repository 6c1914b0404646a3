package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// HeaderStatus is the right-hand side of the header.
type HeaderStatus struct {
	Day     int // 0 before onboarding
	Unread  int
	Focused bool // focus timer running
}

// BreadcrumbSep separates screen titles in the header.
const BreadcrumbSep = " › "

// RenderHeader renders the application header bar. title is usually the
// router breadcrumb; leading crumbs are dropped when it does not fit.
func RenderHeader(title string, status HeaderStatus, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  PTE Prep")

	var right string
	if status.Focused {
		right += lipgloss.NewStyle().Foreground(theme.Secondary).Render("● focus") + "   "
	}
	if status.Day > 0 {
		right += lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("Day %d/30", status.Day)) + "   "
	}
	bell := lipgloss.NewStyle().Foreground(theme.TextDim)
	if status.Unread > 0 {
		bell = bell.Foreground(theme.Accent).Bold(true)
	}
	right += bell.Render(fmt.Sprintf("✉ %d", status.Unread))

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	innerWidth := max(0, width-4)

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(FitTitle(title, innerWidth-leftLen-rightLen-2))
	centerLen := lipgloss.Width(center)

	leftGap := max(1, (innerWidth-centerLen)/2-leftLen)
	rightGap := max(1, innerWidth-leftLen-leftGap-centerLen-rightLen)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// FitTitle shortens a breadcrumb to at most width cells, dropping the
// outermost crumbs first and then cutting the last one.
func FitTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	const ellipsis = "…"
	crumbs := strings.Split(title, BreadcrumbSep)
	for len(crumbs) > 1 && lipgloss.Width(title) > width {
		crumbs = crumbs[1:]
		title = ellipsis + BreadcrumbSep + strings.Join(crumbs, BreadcrumbSep)
	}
	if lipgloss.Width(title) <= width {
		return title
	}
	runes := []rune(title)
	for len(runes) > 0 && lipgloss.Width(string(runes)+ellipsis) > width {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 {
		return ""
	}
	return string(runes) + ellipsis
}

// Clip truncates s to at most height lines.
func Clip(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Columns joins blocks side by side with a gap, or stacks them when the
// terminal is narrow.
func Columns(width int, blocks ...string) string {
	if IsCompactWidth(width) {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	spaced := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, "   ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := max(0, height-headerHeight-footerHeight)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
