// Package prompt asks the user to pick from numbered menus on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoChoices is returned when a menu has nothing to choose from.
var ErrNoChoices = errors.New("nothing to choose from")

// Prompter asks the user to select one of items. def is the zero-based
// index used when the user just presses enter.
type Prompter interface {
	Select(title string, items []string, def int) (int, error)
}

// Numbered renders items as a numbered list and reads the choice from r.
type Numbered struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewNumbered returns a Numbered prompter reading r and writing menus to w.
func NewNumbered(r io.Reader, w io.Writer) *Numbered {
	return &Numbered{reader: bufio.NewReader(r), w: w}
}

// Select prints the menu and returns the chosen index.
func (n *Numbered) Select(title string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoChoices
	}
	if def < 0 || def >= len(items) {
		def = 0
	}

	fmt.Fprintf(n.w, "\n%s\n", title)
	for i, item := range items {
		marker := " "
		if i == def {
			marker = "*"
		}
		fmt.Fprintf(n.w, " %s%d) %s\n", marker, i+1, item)
	}
	fmt.Fprintf(n.w, "Enter number [1-%d] (default %d): ", len(items), def+1)

	line, err := n.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	choice := strings.TrimSpace(line)
	if choice == "" {
		return def, nil
	}

	num, err := strconv.Atoi(choice)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", choice, len(items))
	}
	return num - 1, nil
}

// Fixed always answers with the same index. It stands in for a terminal
// when no input is available.
type Fixed int

// Select returns the fixed index, or an error if it is out of range.
func (f Fixed) Select(_ string, items []string, _ int) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoChoices
	}
	if int(f) < 0 || int(f) >= len(items) {
		return 0, fmt.Errorf("invalid selection %d: choose 1-%d", int(f)+1, len(items))
	}
	return int(f), nil
}
