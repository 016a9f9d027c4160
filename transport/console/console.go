// Package console is the terminal front end: it prints game output and reads validated answers.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	rl "github.com/chzyer/readline"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/config"
)

const invalidChoice = "Sorry, that's not a valid choice."

var yesNoChoices = []string{"y", "yes", "n", "no"}

// Console - reads lines with readline, completion offers the choices of the current question.
type Console struct {
	logger   *slog.Logger
	instance *rl.Instance
	prompt   string

	mu    sync.Mutex
	valid []string
}

func New(logger *slog.Logger, conf config.Console) (*Console, error) {
	return newConsole(logger, conf, &rl.Config{})
}

// newConsole - terminal settings come from conf, streams and terminal detection from base.
func newConsole(logger *slog.Logger, conf config.Console, base *rl.Config) (*Console, error) {
	console := &Console{
		logger: logger.With("component", "console"),
		prompt: conf.Prompt,
	}

	base.Prompt = conf.Prompt
	base.HistoryFile = conf.HistoryFile
	base.AutoComplete = rl.NewPrefixCompleter(rl.PcItemDynamic(console.candidates))
	base.InterruptPrompt = "^C"
	base.EOFPrompt = "exit"
	base.HistorySearchFold = true

	instance, err := rl.NewEx(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open console: %w", err)
	}

	console.instance = instance

	return console, nil
}

// Display - prints each line as is.
func (that *Console) Display(lines []string) {
	out := that.instance.Stdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

// RequestChoice - asks until the answer is one of validChoices, case and surrounding spaces are ignored.
func (that *Console) RequestChoice(ctx context.Context, prompt string, validChoices []string) (string, error) {
	log := that.logger.With("method", "RequestChoice")

	if len(validChoices) == 0 {
		return "", fmt.Errorf("%w: nothing to choose from", apperror.ErrInvalidChoice)
	}

	that.setValid(validChoices)
	defer that.setValid(nil)

	that.Display([]string{prompt})

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrInterrupted, err)
		}

		line, err := that.readLine()
		if err != nil {
			return "", err
		}

		if choice, ok := matchChoice(line, validChoices); ok {
			log.Debug("choice accepted", "choice", choice)
			return choice, nil
		}

		log.Debug("choice rejected", "input", line)
		that.Display([]string{invalidChoice, prompt})
	}
}

// RequestYesNo - y and yes are true, n and no are false.
func (that *Console) RequestYesNo(ctx context.Context, prompt string) (bool, error) {
	answer, err := that.RequestChoice(ctx, prompt+" (y/n)", yesNoChoices)
	if err != nil {
		return false, err
	}

	return isYes(answer), nil
}

func (that *Console) Close() error {
	return that.instance.Close()
}

// readLine - Ctrl-C on a partly typed line clears it, on an empty line it ends input like EOF.
func (that *Console) readLine() (string, error) {
	for {
		line, err := that.instance.Readline()
		switch {
		case errors.Is(err, rl.ErrInterrupt):
			if len(line) == 0 {
				return "", apperror.ErrInterrupted
			}
			continue
		case errors.Is(err, io.EOF):
			return "", apperror.ErrInterrupted
		case err != nil:
			return "", fmt.Errorf("failed to read line: %w", err)
		}

		return line, nil
	}
}

func (that *Console) setValid(choices []string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.valid = slices.Clone(choices)
}

func (that *Console) candidates(string) []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return slices.Clone(that.valid)
}

// matchChoice - returns the valid choice equal to the normalized input.
func matchChoice(input string, validChoices []string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	for _, choice := range validChoices {
		if strings.ToLower(choice) == normalized {
			return choice, true
		}
	}

	return "", false
}

func isYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(answer), "y")
}
