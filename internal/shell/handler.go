// Package shell provides the interactive shell and the batch runner of dices.
// Every input line goes through the compiler and the dispatcher of one Session.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"dices/internal/execution"
	"dices/internal/logger"
	"dices/internal/output"
	"dices/internal/statemachine"
	"dices/internal/testutils"
	"dices/pkg/dicetypes"
)

// commentPrefixes start lines that are never compiled.
var commentPrefixes = []string{"#", "//", "!"}

// Session processes input lines for one shell run.
type Session struct {
	ID string

	compiler   *statemachine.Compiler
	dispatcher *execution.Dispatcher
	printer    *output.Printer
	logger     *log.Logger
}

// NewSession creates a session. In test mode the session ID is deterministic.
func NewSession(compiler *statemachine.Compiler, dispatcher *execution.Dispatcher, printer *output.Printer, testMode bool) *Session {
	id := testutils.GenerateSessionID(testMode)
	return &Session{
		ID:         id,
		compiler:   compiler,
		dispatcher: dispatcher,
		printer:    printer,
		logger:     logger.NewStyledLogger("Shell").With("session", id),
	}
}

// IsComment reports whether line is blank or a comment.
func IsComment(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Handle compiles and runs one line and prints what it produced. Comment lines yield a
// zero Outcome.
func (s *Session) Handle(line string) execution.Outcome {
	if IsComment(line) {
		return execution.Outcome{}
	}
	line = strings.TrimSpace(line)

	action := s.compiler.Compile(line)
	s.logger.Debug("compiled", "input", line, "action", action.Kind, "op", action.Op, "args", action.Args)

	out := s.dispatcher.Run(action)
	s.print(out)
	return out
}

// ProcessLine handles one line and reports whether the shell should stop.
func (s *Session) ProcessLine(line string) bool {
	return s.Handle(line).Exit()
}

func (s *Session) print(out execution.Outcome) {
	if out.Err != nil {
		s.logger.Debug("command failed", "error", out.Err)
		s.printer.Error(out.Err.Error())
		return
	}

	switch out.Kind {
	case dicetypes.ActionExecute:
		s.printer.Result(out.Set, out.Result)
	case dicetypes.ActionList:
		s.listing("Commands", out.Commands)
	case dicetypes.ActionAliases:
		s.listing("Aliases", out.Commands)
	case dicetypes.ActionMacros:
		s.listing("Macros", out.Commands)
	}
}

func (s *Session) listing(title string, cmds []dicetypes.Command) {
	if len(cmds) == 0 {
		s.printer.Info("no " + strings.ToLower(title) + " defined")
		return
	}
	s.printer.Commands(title, cmds)
}

// RunBatch processes every line of r until EOF or an exit command. It returns the
// number of lines that failed.
func (s *Session) RunBatch(r io.Reader) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		out := s.Handle(scanner.Text())
		if out.Err != nil {
			failed++
			s.logger.Warn("line failed", "line", lineNo, "error", out.Err)
		}
		if out.Exit() {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read batch input: %w", err)
	}
	if failed > 0 {
		s.printer.Warning(fmt.Sprintf("%d of %d lines failed", failed, lineNo))
	}
	return failed, nil
}
