package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// cellWidth is the number of terminal columns per grid cell. Terminal
// cells are roughly twice as tall as wide, so doubling the columns
// keeps the playfield square.
const cellWidth = 2

const (
	cellGlyph  = "██"
	emptyGlyph = "  "
)

// Renderer draws snapshots as styled strings. Styles are derived from
// the active theme once at construction.
type Renderer struct {
	head   lipgloss.Style
	body   lipgloss.Style
	tail   lipgloss.Style
	food   lipgloss.Style
	bonus  lipgloss.Style
	field  lipgloss.Style
	text   lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
	border lipgloss.Style
}

// NewRenderer builds a renderer for the given theme.
func NewRenderer(th theme.Theme) *Renderer {
	bg := lipgloss.Color(th.FieldBG)
	return &Renderer{
		head:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.SnakeHead)).Background(bg),
		body:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.SnakeBody)).Background(bg),
		tail:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.SnakeTail)).Background(bg),
		food:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.Food)).Background(bg),
		bonus:  lipgloss.NewStyle().Foreground(lipgloss.Color(th.BonusFood)).Background(bg),
		field:  lipgloss.NewStyle().Background(bg),
		text:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.UIText)),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color(th.UIAccent)).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(th.UIMuted)),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(th.UIMuted)),
	}
}

// RenderSnapshot produces the full frame: HUD, bordered playfield (or
// an overlay when the session is not actively playing) and a hint line.
func (r *Renderer) RenderSnapshot(snap game.Snapshot, controllerEnabled bool) string {
	boardW := snap.Grid.Width() * cellWidth
	boardH := snap.Grid.Height()

	var board string
	switch snap.Status {
	case game.StatusMenu:
		board = r.overlay(boardW, boardH, r.menuLines(snap))
	case game.StatusGameOver:
		board = r.overlay(boardW, boardH, r.gameOverLines(snap))
	case game.StatusPaused:
		board = r.overlay(boardW, boardH, []string{r.accent.Render("PAUSED"), "", r.muted.Render("press p to resume")})
	default:
		board = r.renderField(snap)
	}

	var sb strings.Builder
	sb.WriteString(r.renderHUD(snap, controllerEnabled, boardW+2))
	sb.WriteRune('\n')
	sb.WriteString(r.border.Render(board))
	sb.WriteRune('\n')
	sb.WriteString(r.renderHint(snap, controllerEnabled))
	return sb.String()
}

// renderField draws the grid cells. Consecutive cells with the same
// style are grouped to keep the escape-sequence count down.
func (r *Renderer) renderField(snap game.Snapshot) string {
	type cellClass uint8
	const (
		classEmpty cellClass = iota
		classHead
		classBody
		classTail
		classFood
		classBonus
	)

	w, h := snap.Grid.Width(), snap.Grid.Height()
	cells := make([]cellClass, w*h)

	for i, p := range snap.Body {
		switch i {
		case 0:
			cells[p.Y*w+p.X] = classHead
		case len(snap.Body) - 1:
			cells[p.Y*w+p.X] = classTail
		default:
			cells[p.Y*w+p.X] = classBody
		}
	}
	fp := snap.Food.Position
	if snap.Grid.Contains(fp) && cells[fp.Y*w+fp.X] == classEmpty {
		if snap.Food.Kind == game.FoodBonus {
			cells[fp.Y*w+fp.X] = classBonus
		} else {
			cells[fp.Y*w+fp.X] = classFood
		}
	}

	styleFor := func(c cellClass) lipgloss.Style {
		switch c {
		case classHead:
			return r.head
		case classBody:
			return r.body
		case classTail:
			return r.tail
		case classFood:
			return r.food
		case classBonus:
			return r.bonus
		default:
			return r.field
		}
	}
	glyphFor := func(c cellClass) string {
		if c == classEmpty {
			return emptyGlyph
		}
		return cellGlyph
	}

	var sb strings.Builder
	sb.Grow(w * h * 4)
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < w {
			start := cells[y*w+x]
			var run strings.Builder
			for x < w && cells[y*w+x] == start {
				run.WriteString(glyphFor(start))
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

// renderHUD draws the score line above the playfield.
func (r *Renderer) renderHUD(snap game.Snapshot, controllerEnabled bool, width int) string {
	left := r.text.Render("score ") + r.accent.Render(fmt.Sprintf("%d", snap.Score)) +
		r.muted.Render(fmt.Sprintf("  speed %d", snap.SpeedLevel))
	right := r.muted.Render(fmt.Sprintf("best %d", snap.HighScore))
	if controllerEnabled {
		right = r.accent.Render("◆ ") + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderHint(snap game.Snapshot, controllerEnabled bool) string {
	switch snap.Status {
	case game.StatusMenu:
		return r.muted.Render("enter: play · q: quit")
	case game.StatusGameOver:
		return r.muted.Render("enter: menu · q: quit")
	default:
		if controllerEnabled {
			return r.muted.Render("d-pad or wasd/arrows: move · p: pause · q: quit")
		}
		return r.muted.Render("wasd/arrows: move · p: pause · q: quit")
	}
}

func (r *Renderer) menuLines(snap game.Snapshot) []string {
	lines := make([]string, 0, fontHeight+3)
	for _, l := range renderBlockText("snake") {
		lines = append(lines, r.accent.Render(l))
	}
	lines = append(lines, "")
	if snap.HighScore > 0 {
		lines = append(lines, r.muted.Render(fmt.Sprintf("best %d", snap.HighScore)))
	}
	lines = append(lines, r.text.Render("press enter to play"))
	return lines
}

func (r *Renderer) gameOverLines(snap game.Snapshot) []string {
	title := "game over"
	if snap.Won {
		title = "you won"
	}
	lines := make([]string, 0, 2*fontHeight+3)
	for _, l := range renderBlockText(title) {
		lines = append(lines, r.accent.Render(l))
	}
	lines = append(lines, "")
	for _, l := range renderBlockText(fmt.Sprintf("%d", snap.Score)) {
		lines = append(lines, r.text.Render(l))
	}
	if snap.Score >= snap.HighScore && snap.Score > 0 {
		lines = append(lines, "", r.accent.Render("new best"))
	}
	return lines
}

// overlay centers lines within a board-sized box.
func (r *Renderer) overlay(width, height int, lines []string) string {
	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
