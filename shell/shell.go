// Package shell implements the interactive command loop for playing with
// the engine: show the board, edit the position, and ask for best moves.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/config"
	"github.com/wztlei/scrabble/game"
	"github.com/wztlei/scrabble/movegen"
)

var (
	errNoData     = errors.New("no data in command")
	errQuitSignal = errors.New("sending quit signal")
)

type shellcmd struct {
	cmd  string
	args []string
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

// Response is the printable result of a shell command.
type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l    *readline.Instance
	cfg  *config.Config
	game *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config, g *game.Game) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mscrabble>\033[0m ",
		HistoryFile:     "/tmp/scrabble_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg, game: g}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.l.Stdout(), msg)
	io.WriteString(sc.l.Stdout(), "\n")
}

func (sc *ShellController) showError(err error) {
	io.WriteString(sc.l.Stderr(), "Error: "+err.Error()+"\n")
}

func (sc *ShellController) gameState() string {
	var sb strings.Builder
	sb.WriteString(sc.game.Board().ToDisplayText())
	fmt.Fprintf(&sb, "Rack:  %s\n", sc.game.Rack().TilesOn())
	fmt.Fprintf(&sb, "Score: %d   Turn: %d   Bag: %d tiles",
		sc.game.Score(), sc.game.Turn(), sc.game.Bag().TilesRemaining())
	return sb.String()
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.gameState()), nil
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: rack <letters>")
	}
	sc.game.SetRack(cmd.args[0])
	return msg(sc.gameState()), nil
}

func (sc *ShellController) tile(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 3 {
		return nil, errors.New("usage: tile <row> <col> <letter>")
	}
	row, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	col, err := strconv.Atoi(cmd.args[1])
	if err != nil {
		return nil, err
	}
	dim := sc.game.Board().Dim()
	if row < 1 || row > dim || col < 1 || col > dim {
		return nil, fmt.Errorf("position out of bounds; rows and columns run from 1 to %d", dim)
	}
	if len(cmd.args[2]) != 1 {
		return nil, errors.New("the tile must be a single letter")
	}
	letter := cmd.args[2][0]
	if !alphabet.IsUpper(letter) && !alphabet.IsBlank(letter) &&
		letter != alphabet.EmptySquareMarker {
		return nil, fmt.Errorf("cannot place %q", letter)
	}
	sc.game.Board().SetLetter(row, col, letter)
	sc.game.Reannotate()
	return msg(sc.gameState()), nil
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	m := sc.game.BestMove()
	if m.IsEmpty() {
		return msg("no legal move"), nil
	}
	return msg(m.ShortDescription()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	m := sc.game.BestMove()
	if m.IsEmpty() {
		return msg("no legal move"), nil
	}
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	return msg(m.ShortDescription() + "\n" + sc.gameState()), nil
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	sc.game.Bag().Refill(sc.game.Rack(), movegen.RackSize)
	return msg(fmt.Sprintf("Rack: %s   Bag: %d tiles",
		sc.game.Rack().TilesOn(), sc.game.Bag().TilesRemaining())), nil
}

func (sc *ShellController) handle(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "show", "s":
		return sc.show(cmd)
	case "rack":
		return sc.rack(cmd)
	case "tile":
		return sc.tile(cmd)
	case "gen":
		return sc.gen(cmd)
	case "play":
		return sc.play(cmd)
	case "draw":
		return sc.draw(cmd)
	case "help":
		return usage(cmd)
	case "bye", "exit", "quit":
		sig <- syscall.SIGINT
		return nil, errQuitSignal
	default:
		return nil, fmt.Errorf("unknown command %q; try `help`", cmd.cmd)
	}
}

// Execute runs a single command line, for non-interactive invocations.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.handle(line, sig)
	switch {
	case errors.Is(err, errQuitSignal):
	case err != nil:
		sc.showError(err)
	case resp != nil:
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.handle(line, sig)
		if errors.Is(err, errQuitSignal) {
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("exiting readline loop")
}

func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
}
