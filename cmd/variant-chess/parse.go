// parse.go - Interactive command parsing
package main

import (
	"strconv"
	"strings"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/errors"
)

// Command names.
const (
	cmdMove    = "move"
	cmdUndo    = "undo"
	cmdMoves   = "moves"
	cmdBoard   = "board"
	cmdStatus  = "status"
	cmdScore   = "score"
	cmdForfeit = "forfeit"
	cmdReset   = "reset"
	cmdHelp    = "help"
	cmdQuit    = "quit"
)

var aliases = map[string]string{
	"m":    cmdMove,
	"u":    cmdUndo,
	"b":    cmdBoard,
	"?":    cmdHelp,
	"q":    cmdQuit,
	"exit": cmdQuit,
}

// usages gives the expected form of every command that takes arguments.
var usages = map[string]string{
	cmdMove:  "move r,c r,c",
	cmdMoves: "moves [r,c]",
	cmdReset: "reset [W|B]",
}

// command is a parsed input line.
type command struct {
	name    string
	squares []chess.Square

	colour    chess.Colour // reset only
	hasColour bool
}

// parseCommand parses one input line. A line of two bare squares is read
// as a move.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, &errors.ParseError{Err: errors.ErrUnknownCommand, Expected: "a command"}
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if len(fields) == 2 && strings.Contains(fields[0], ",") {
		name, args = cmdMove, fields
	}

	cmd := command{name: name}
	switch name {
	case cmdMove:
		if len(args) != 2 {
			return command{}, arityError(line, name, len(args))
		}
		for _, arg := range args {
			sq, err := parseSquare(arg)
			if err != nil {
				return command{}, err
			}
			cmd.squares = append(cmd.squares, sq)
		}

	case cmdMoves:
		if len(args) > 1 {
			return command{}, arityError(line, name, len(args))
		}
		if len(args) == 1 {
			sq, err := parseSquare(args[0])
			if err != nil {
				return command{}, err
			}
			cmd.squares = []chess.Square{sq}
		}

	case cmdReset:
		if len(args) > 1 {
			return command{}, arityError(line, name, len(args))
		}
		if len(args) == 1 {
			colour, ok := chess.ParseColour(args[0])
			if !ok {
				return command{}, &errors.ParseError{
					Err:      errors.ErrInvalidConfig,
					Input:    args[0],
					Expected: "W or B",
				}
			}
			cmd.colour, cmd.hasColour = colour, true
		}

	case cmdUndo, cmdBoard, cmdStatus, cmdScore, cmdForfeit, cmdHelp, cmdQuit:
		if len(args) != 0 {
			return command{}, arityError(line, name, len(args))
		}

	default:
		return command{}, &errors.ParseError{Err: errors.ErrUnknownCommand, Input: fields[0]}
	}
	return cmd, nil
}

func arityError(line, name string, got int) error {
	expected := usages[name]
	if expected == "" {
		expected = name
	}
	return &errors.ParseError{
		Input:    line,
		Expected: expected,
		Got:      strconv.Itoa(got) + " argument(s)",
	}
}

// parseSquare parses "row,col". Squares off the board parse fine; the
// rules reject moves to them.
func parseSquare(s string) (chess.Square, error) {
	rowText, colText, ok := strings.Cut(s, ",")
	if !ok {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Expected: "row,col"}
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Expected: "numeric row", Got: rowText}
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Expected: "numeric column", Got: colText}
	}
	return chess.Sq(row, col), nil
}
