// Package view renders game state into display lines.
package view

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rocketscienceinc/console-games/internal/entity"
)

const wrapWidth = 80

func Board(board *entity.Board) []string {
	cell := func(id int) entity.Marker {
		marker, _ := board.MarkerAt(id)
		return marker
	}

	row := func(first int) string {
		return fmt.Sprintf(" %s │ %s │ %s", cell(first), cell(first+1), cell(first+2))
	}

	return []string{
		"",
		row(1),
		"───┼───┼───",
		row(4),
		"───┼───┼───",
		row(7),
		"",
	}
}

func Table(dealer, user *entity.Participant) []string {
	return []string{
		fmt.Sprintf("%s: %s", dealer.Name, dealer.Hand()),
		fmt.Sprintf("%s: %s", user.Name, user.Hand()),
		"",
	}
}

// History - the move history as a table, one row per round.
func History(history *entity.MoveHistory) []string {
	var buf bytes.Buffer

	writer := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "Round\tHuman\tComputer")
	for i, round := range history.Rounds() {
		fmt.Fprintf(writer, "%d\t%s\t%s\n", i+1, round.Human, round.Computer)
	}
	_ = writer.Flush()

	lines := []string{"Move History"}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		lines = append(lines, strings.TrimRight(line, " "))
	}

	return lines
}

func Score(score *entity.Scoreboard) string {
	return fmt.Sprintf("The score is human: %d, computer: %d.", score.Human, score.Computer)
}

func Tally(tally entity.Tally) string {
	return fmt.Sprintf("Session: %d won, %d lost, %d tied.", tally.Human, tally.Computer, tally.Ties)
}

// Wrap - breaks text on spaces so no line is longer than width.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}

	return append(lines, current)
}
