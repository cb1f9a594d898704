// repl.go - The interactive match loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/config"
	"github.com/lgbarn/variant-chess-go/internal/errors"
	"github.com/lgbarn/variant-chess-go/internal/game"
	"github.com/lgbarn/variant-chess-go/internal/output"
)

const commandHelp = `Commands:
  move r,c r,c   move the piece on the first square to the second (or just "r,c r,c")
  undo           take back the last move
  moves [r,c]    list legal moves, or the destinations of one piece
  board          draw the board
  status         show whose turn it is and how the game stands
  score          show the match score
  forfeit        concede the game; the opponent wins
  reset [W|B]    start a new game, optionally choosing who moves first
  help           show this help
  quit           leave
`

// match is a series of games on the configured board. A finished game is
// scored and replaced by a fresh one with the same first player.
type match struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
	writer output.PositionWriter

	first   chess.Colour
	session *game.Session

	wins  [2]int // indexed by chess.Colour
	games int
}

// newMatch sets up the first game of a match.
func newMatch(cfg *config.Config, logger *zap.Logger) (*match, error) {
	first, err := cfg.FirstColour()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &match{
		cfg:    cfg,
		logger: logger,
		out:    cfg.OutputFile,
		writer: output.NewWriter(cfg.OutputFile, cfg.Output),
	}
	if err := m.reset(first); err != nil {
		return nil, err
	}
	return m, nil
}

// reset starts a new game with first to move. The score is kept.
func (m *match) reset(first chess.Colour) error {
	board, err := m.cfg.NewBoard()
	if err != nil {
		return errors.Wrap(err, "new game")
	}
	m.first = first
	m.session = game.NewSessionWithBoard(first, board, game.WithLogger(m.logger))
	return nil
}

// run reads commands from in until quit or end of input.
func (m *match) run(in io.Reader) error {
	m.show()

	scanner := bufio.NewScanner(in)
	for {
		m.prompt()
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			m.logger.Debug("command_rejected", zap.String("line", line), zap.Error(err))
			fmt.Fprintf(m.out, "Error: %v\n", err)
			continue
		}
		if cmd.name == cmdQuit {
			break
		}
		if err := m.execute(cmd); err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// execute carries out one parsed command.
func (m *match) execute(cmd command) error {
	switch cmd.name {
	case cmdMove:
		from, to := cmd.squares[0], cmd.squares[1]
		turn := m.session.CurrentPlayer()
		if !m.session.MovePiece(from, to) {
			return errors.Wrapf(errors.ErrIllegalMove, "%s %v", turn, chess.Move{From: from, To: to})
		}
		m.show()
		if st := m.session.Status(); st.Over() {
			return m.finish(st)
		}

	case cmdUndo:
		if !m.session.UndoLastMove() {
			return fmt.Errorf("nothing to undo")
		}
		m.show()

	case cmdMoves:
		if len(cmd.squares) == 1 {
			m.listDestinations(cmd.squares[0])
		} else {
			m.listMoves()
		}

	case cmdBoard:
		m.show()

	case cmdStatus:
		m.info("%s\n", output.FormatStatus(m.session.Status()))

	case cmdScore:
		m.info("%s\n", m.score())

	case cmdForfeit:
		if err := m.session.Forfeit(); err != nil {
			return err
		}
		return m.finish(m.session.Status())

	case cmdReset:
		first := m.first
		if cmd.hasColour {
			first = cmd.colour
		}
		if err := m.reset(first); err != nil {
			return err
		}
		m.show()

	case cmdHelp:
		m.info("%s", commandHelp)
	}
	return nil
}

// finish scores a game that is over and starts the next one.
func (m *match) finish(st game.Status) error {
	m.games++
	fields := []zap.Field{
		zap.String("session_id", m.session.ID()),
		zap.Stringer("state", st.State),
		zap.Int("games", m.games),
	}
	if st.HasWinner {
		m.wins[st.Winner]++
		fields = append(fields, zap.Stringer("winner", st.Winner))
	}
	m.logger.Info("game_over", fields...)

	m.info("Game over: %s\n", output.FormatStatus(st))
	m.info("%s\n", m.score())

	if err := m.reset(m.first); err != nil {
		return err
	}
	m.show()
	return nil
}

// show writes the current position. Verbosity 0 draws the bare board;
// verbosity 2 adds the legal moves of the player to move.
func (m *match) show() {
	v := output.SessionView(m.session)
	var err error
	if m.cfg.Verbosity == 0 && !m.cfg.Output.JSONFormat {
		err = output.RenderBoard(m.out, v.Board, v.LastMove, m.cfg.Output)
	} else {
		err = m.writer.WritePosition(v)
	}
	if err != nil {
		m.logger.Warn("render_failed", zap.Error(err))
	}
	if m.cfg.Verbosity >= 2 {
		m.listMoves()
	}
}

func (m *match) listMoves() {
	moves := m.session.LegalMoves()
	if len(moves) == 0 {
		m.info("No legal moves\n")
		return
	}
	names := make([]string, len(moves))
	for i, mv := range moves {
		names[i] = mv.String()
	}
	m.info("Legal moves (%d): %s\n", len(moves), strings.Join(names, " "))
}

func (m *match) listDestinations(from chess.Square) {
	dests := m.session.LegalDestinations(from)
	if len(dests) == 0 {
		m.info("No legal moves from %v\n", from)
		return
	}
	names := make([]string, len(dests))
	for i, sq := range dests {
		names[i] = sq.String()
	}
	m.info("%v can move to: %s\n", from, strings.Join(names, " "))
}

func (m *match) score() string {
	return fmt.Sprintf("Score: White %d, Black %d", m.wins[chess.White], m.wins[chess.Black])
}

// info writes a message for the players. Messages are left out of JSON
// output so it stays a stream of positions.
func (m *match) info(format string, args ...interface{}) {
	if m.cfg.Output.JSONFormat {
		return
	}
	fmt.Fprintf(m.out, format, args...)
}

func (m *match) prompt() {
	if m.cfg.Output.JSONFormat || m.cfg.Verbosity == 0 {
		return
	}
	fmt.Fprintf(m.out, "%s> ", m.session.CurrentPlayer())
}
