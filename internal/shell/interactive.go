package shell

import (
	"strings"

	"github.com/abiosoft/ishell/v2"

	"dices/internal/commands"
)

// Options configures the interactive shell.
type Options struct {
	Prompt      string
	HistoryFile string
	Banner      string
}

// Run starts the interactive shell and blocks until the user exits or closes input.
func (s *Session) Run(registry *commands.Registry, opts Options) {
	sh := ishell.New()
	sh.SetPrompt(opts.Prompt)
	if opts.HistoryFile != "" {
		sh.SetHistoryPath(opts.HistoryFile)
	}
	sh.CustomCompleter(NewCompleter(registry))

	// exit and help are resolved by the compiler like every other name.
	sh.DeleteCmd("exit")
	sh.DeleteCmd("help")

	if opts.Banner != "" {
		sh.Println(opts.Banner)
	}

	sh.NotFound(func(c *ishell.Context) {
		if len(c.RawArgs) == 0 {
			return
		}
		if s.ProcessLine(strings.Join(c.RawArgs, " ")) {
			c.Stop()
		}
	})

	s.logger.Info("shell started", "prompt", opts.Prompt, "history", opts.HistoryFile)
	sh.Run()
	sh.Close()
	s.logger.Info("shell stopped")
}
