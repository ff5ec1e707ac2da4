package ui

import (
	"fmt"
	"othello/game"
	"othello/meta"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const (
	boardLeft = 3 // Columns taken by the row labels
	boardTop  = 1 // Rows taken by the column labels
	cellWidth = 2
	statusRow = boardTop + meta.BoardSize + 1

	diskRune  = '●'
	legalRune = '·'
)

// Terminal draws the board on a tcell screen. Rows of the board are screen rows and
// every cell is two characters wide.
type Terminal struct {
	screen tcell.Screen
	theme  Theme
	board  game.Board
	toMove game.Player
	legal  []game.Position
	cursor game.Position
	status string
}

func New(theme Theme) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return NewWithScreen(screen, theme), nil
}

// NewWithScreen uses an already initialised screen.
func NewWithScreen(screen tcell.Screen, theme Theme) *Terminal {
	return &Terminal{
		screen: screen,
		theme:  theme,
		cursor: game.Position{X: meta.BoardSize/2 - 1, Y: meta.BoardSize/2 - 1},
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) Render(state *game.GameState) {
	t.board = state.Board
	t.toMove = state.ToMove
	t.legal = nil
	t.status = fmt.Sprintf("%s to move", t.toMove)
	t.draw()
}

func (t *Terminal) HighlightLegalMoves(moves []game.Position) {
	t.legal = moves
	t.draw()
}

// Refresh follows every move or pass, so the turn always changes hands.
func (t *Terminal) Refresh(board game.Board) {
	t.board = board
	t.toMove = t.toMove.Opponent()
	t.legal = nil
	t.status = fmt.Sprintf("%s to move", t.toMove)
	t.draw()
}

func (t *Terminal) AwaitInput() (game.Position, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalised
			return game.Position{}, game.ErrQuit
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			pos, ok := cellAt(ev.Position())
			if !ok {
				continue
			}
			t.cursor = pos
			return pos, nil
		case *tcell.EventKey:
			if quitKey(ev) {
				return game.Position{}, game.ErrQuit
			}
			if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
				return t.cursor, nil
			}
			t.moveCursor(ev)
			t.draw()
		}
	}
}

func (t *Terminal) AnnounceResult(winner game.Player) {
	t.legal = nil
	t.status = fmt.Sprintf("%s Press any key to exit.", resultText(winner))
	t.draw()
	log.Info().Msgf("result shown: %s", resultText(winner))

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventMouse:
			if ev.Buttons() != tcell.ButtonNone {
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		}
	}
}

func resultText(winner game.Player) string {
	switch winner {
	case game.Black:
		return "You won!"
	case game.White:
		return "White won!"
	default:
		return "Tie!"
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// cellAt maps a screen coordinate to the board cell under it.
func cellAt(col, row int) (game.Position, bool) {
	if col < boardLeft || row < boardTop {
		return game.Position{}, false
	}
	pos := game.Position{X: row - boardTop, Y: (col - boardLeft) / cellWidth}
	return pos, pos.InBounds()
}

func (t *Terminal) moveCursor(ev *tcell.EventKey) {
	d := game.Direction{}
	switch ev.Key() {
	case tcell.KeyUp:
		d.DX = -1
	case tcell.KeyDown:
		d.DX = 1
	case tcell.KeyLeft:
		d.DY = -1
	case tcell.KeyRight:
		d.DY = 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			d.DX = -1
		case 'j':
			d.DX = 1
		case 'h':
			d.DY = -1
		case 'l':
			d.DY = 1
		}
	}
	if next := t.cursor.Add(d); next.InBounds() {
		t.cursor = next
	}
}

func (t *Terminal) draw() {
	t.screen.Clear()
	text := tcell.StyleDefault.Foreground(t.theme.Text)

	for y := 0; y < meta.BoardSize; y++ {
		t.screen.SetContent(boardLeft+y*cellWidth, 0, rune('0'+y), nil, text)
	}
	for x := 0; x < meta.BoardSize; x++ {
		t.screen.SetContent(1, boardTop+x, rune('0'+x), nil, text)
		for y := 0; y < meta.BoardSize; y++ {
			t.drawCell(game.Position{X: x, Y: y})
		}
	}

	status := t.status
	if status != "" {
		status += "  "
	}
	status += fmt.Sprintf("Black %d  White %d", t.board.Count(game.Black), t.board.Count(game.White))
	for i, r := range status {
		t.screen.SetContent(i, statusRow, r, nil, text)
	}

	t.screen.Show()
}

func (t *Terminal) drawCell(pos game.Position) {
	style := tcell.StyleDefault.Background(t.theme.Board)
	if pos == t.cursor {
		style = style.Background(t.theme.Cursor)
	}

	r := ' '
	switch t.board[pos.X][pos.Y] {
	case game.Black:
		r = diskRune
		style = style.Foreground(t.theme.Black)
	case game.White:
		r = diskRune
		style = style.Foreground(t.theme.White)
	default:
		if slices.Contains(t.legal, pos) {
			r = legalRune
			style = style.Foreground(t.theme.Highlight)
		}
	}

	col := boardLeft + pos.Y*cellWidth
	row := boardTop + pos.X
	t.screen.SetContent(col, row, r, nil, style)
	t.screen.SetContent(col+1, row, ' ', nil, style)
}
