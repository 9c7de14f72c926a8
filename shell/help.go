package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var helpTopics = map[string]string{
	"show": "show\n  Print the board, the rack, and the running score.",
	"rack": "rack <letters>\n  Set the rack. Use ? for a blank, e.g. `rack CAT?`.",
	"tile": "tile <row> <col> <letter>\n  Put a letter on the board (lowercase for a blank), or . to clear\n  the square. Cross-checks and anchors are recomputed.",
	"gen":  "gen\n  Show the best move for the current rack without playing it.",
	"play": "play\n  Find the best move, commit it to the board, and refill the rack.",
	"draw": "draw\n  Refill the rack from the bag.",
	"help": "help [command]\n  Show this list, or detailed help for one command.",
	"exit": "exit\n  Leave the shell. `bye` and `quit` work too.",
}

func usage(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		topic, ok := helpTopics[cmd.args[0]]
		if !ok {
			return nil, fmt.Errorf("there is no help for %q", cmd.args[0])
		}
		return msg(topic), nil
	}
	names := lo.Keys(helpTopics)
	sort.Strings(names)
	return msg("Commands: " + strings.Join(names, ", ") +
		"\nUse `help <command>` for details."), nil
}
