package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/notation"
	"github.com/lgbarn/checkers-go/internal/render"
)

const sessionHelp = `  <move>        play a move, e.g. 2,3-3,4 or a chain 2,3x4,5x6,7
  moves, hint   list the legal moves
  board         redraw the board
  layout        print the position as a layout string
  new [layout]  start a new game, optionally from a layout
  undo          take back the last move
  quit, exit    leave
`

// Session is an interactive game read from a line-oriented input.
type Session struct {
	cfg     *config.Config
	out     io.Writer
	writer  render.StateWriter
	log     zerolog.Logger
	rules   engine.Rules
	state   *engine.GameState
	history []*engine.GameState
	gameID  string
}

// NewSession creates a session with a fresh game under the configured rules.
func NewSession(cfg *config.Config, log zerolog.Logger) *Session {
	s := &Session{
		cfg:    cfg,
		out:    cfg.OutputFile,
		writer: render.NewStateWriter(cfg.OutputFile, cfg.Display),
		log:    log,
		rules:  cfg.Rules.Engine(),
	}
	s.start(engine.NewGame(engine.WithRules(s.rules)))
	return s
}

// State returns the current game state.
func (s *Session) State() *engine.GameState {
	return s.state
}

func (s *Session) start(state *engine.GameState) {
	s.state = state
	s.history = s.history[:0]
	s.gameID = uuid.New().String()
	s.log.Info().
		Str("game", s.gameID).
		Str("layout", notation.FormatLayout(state.Snapshot(), state.SideToMove())).
		Msg("game started")
}

// Run reads commands until quit or end of input.
func (s *Session) Run(in io.Reader) error {
	if err := s.show(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			s.log.Debug().Str("game", s.gameID).Err(err).Msg("command rejected")
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		if quit {
			break
		}
	}

	if err := s.writer.Close(); err != nil {
		return err
	}
	return scanner.Err()
}

// Execute runs one input line. quit is set by quit and exit.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		_, err = fmt.Fprint(s.out, sessionHelp)
	case "board":
		err = s.show()
	case "moves", "hint":
		err = s.hint()
	case "layout":
		_, err = fmt.Fprintln(s.out, notation.FormatLayout(s.state.Snapshot(), s.state.SideToMove()))
	case "new":
		err = s.newGame(strings.Join(fields[1:], " "))
	case "undo":
		err = s.undo()
	default:
		err = s.play(strings.TrimSpace(line))
	}
	return false, err
}

func (s *Session) show() error {
	if err := s.writer.WriteState(s.state); err != nil {
		return err
	}
	return s.writer.Flush()
}

func (s *Session) hint() error {
	if s.state.IsOver() {
		_, err := fmt.Fprintln(s.out, render.StatusLine(s.state))
		return err
	}
	return render.Moves(s.out, engine.LegalMoves(s.state))
}

func (s *Session) newGame(layout string) error {
	if layout == "" {
		s.start(engine.NewGame(engine.WithRules(s.rules)))
		return s.show()
	}
	board, side, err := notation.ParseLayout(layout)
	if err != nil {
		return err
	}
	s.start(engine.NewGameFromBoard(board, side, engine.WithRules(s.rules)))
	return s.show()
}

func (s *Session) undo() error {
	if len(s.history) == 0 {
		_, err := fmt.Fprintln(s.out, "Nothing to undo")
		return err
	}
	s.state = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return s.show()
}

// play applies every hop of the move text. Nothing changes unless all of
// them are accepted.
func (s *Session) play(text string) error {
	path, err := notation.ParseMoveText(text)
	if err != nil {
		return err
	}

	state := s.state
	for _, hop := range notation.Expand(path) {
		next, err := engine.ApplyMove(state, hop)
		if err != nil {
			return fmt.Errorf("%s: %w", notation.FormatMove(hop), err)
		}
		state = next
	}

	s.history = append(s.history, s.state)
	s.state = state
	s.log.Debug().
		Str("game", s.gameID).
		Str("move", text).
		Int("ply", state.Ply()).
		Msg("move played")

	if outcome, over := state.Outcome(); over {
		s.log.Info().
			Str("game", s.gameID).
			Str("result", outcome.String()).
			Int("plies", state.Ply()).
			Msg("game over")
	}
	return s.show()
}
