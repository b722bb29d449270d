package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"convar/internal/config"
	"convar/internal/formatting"
	"convar/pkg/cvar"
	"convar/pkg/logging"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
)

// errExit signals a clean shutdown requested by the user.
var errExit = errors.New("exit")

// REPL is an interactive read-eval-print loop over a cvar.Console.
// It owns the terminal concerns only: prompt, history, tab completion
// and listing presentation. Every command line is handed to the
// interpreter, which rebuilds the node tree from the live
// configuration object per command.
type REPL struct {
	console   *cvar.Console
	logger    *Logger
	formatter formatting.Formatter
	cfg       config.ConsoleConfig
	rl        *readline.Instance
	sessionID string
}

// New creates a REPL over console, configured by cfg.
func New(console *cvar.Console, logger *Logger, cfg config.ConsoleConfig) *REPL {
	return &REPL{
		console: console,
		logger:  logger,
		formatter: formatting.NewFormatter(formatting.Options{
			Format: formatting.OutputFormat(cfg.Output),
			Color:  cfg.Color,
		}),
		cfg:       cfg,
		sessionID: uuid.NewString(),
	}
}

// Run processes commands until the context is cancelled, the input
// reaches EOF, or the user types exit.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.cfg.Prompt,
		HistoryFile:       r.cfg.HistoryFile,
		AutoComplete:      r.createCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	logging.Info("REPL", "session %s started", r.sessionID)
	r.logger.Info("Console ready. Type 'help' for available commands. Use TAB for completion.")

	for {
		select {
		case <-ctx.Done():
			logging.Info("REPL", "session %s shutting down", r.sessionID)
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue
			}
		} else if err == io.EOF {
			r.logger.Info("Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if err := r.executeLine(ctx, input); err != nil {
			if errors.Is(err, errExit) {
				r.logger.Info("Goodbye!")
				return nil
			}
			r.logger.Error("Error: %v", err)
		}
	}
}

// executeLine handles the REPL's own builtins and hands everything
// else to the interpreter. Find listings are re-rendered through the
// configured formatter; all other output is printed as returned.
func (r *REPL) executeLine(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	head := strings.ToLower(parts[0])

	switch head {
	case "exit", "quit":
		return errExit
	case "clear":
		r.clearScreen()
		return nil
	case "find":
		query := ""
		if len(parts) > 1 {
			query = parts[1]
		}
		return r.renderFind(query)
	}

	logging.Debug("REPL", "session %s executing %q", r.sessionID, input)
	for _, line := range r.console.Execute(ctx, input) {
		r.logger.OutputLine("%s", line)
	}
	return nil
}

func (r *REPL) renderFind(query string) error {
	matches, err := r.console.Find(query)
	if err != nil {
		return err
	}
	r.logger.OutputLine("%s", r.formatter.FormatMatches(matches))
	return nil
}

func (r *REPL) clearScreen() {
	// Standard ANSI clear plus cursor home.
	r.logger.Output("\033[2J\033[H")
}

// SessionID returns the unique id assigned to this REPL session.
func (r *REPL) SessionID() string {
	return r.sessionID
}
