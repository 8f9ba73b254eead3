// Package command parses and runs the one-line commands of an interactive
// session.
package command

import (
	"regexp"
	"strconv"
)

// Kind identifies a parsed command.
type Kind int

const (
	Invalid Kind = iota
	Move
	Create
	Delete
	Save
	QuitPrompt
	SaveQuit
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Create:
		return "create"
	case Delete:
		return "delete"
	case Save:
		return "save"
	case QuitPrompt:
		return "quit"
	case SaveQuit:
		return "save-quit"
	}
	return "invalid"
}

// Command is one parsed input line.
type Command struct {
	Kind     Kind
	ID       int    // Move, Delete; -1 when the typed id does not fit an int
	Label    string // Move, Delete: the id as typed
	Date     string // Move, Create
	Body     string // Create
	Category string // Create: substring to match against known categories
}

// Structural commands, tried in this order.
var (
	moveRe   = regexp.MustCompile(`^(\d+)m\s*(\d+|\w+)$`)
	createRe = regexp.MustCompile(`^n (.*); (.*); (\d+|\w+)$`)
	deleteRe = regexp.MustCompile(`^(\d+)d$`)
)

var simple = map[string]Kind{
	"w":  Save,
	"q":  QuitPrompt,
	"wq": SaveQuit,
}

// Parse classifies line. Tokens are case-sensitive and the first matching
// form wins.
func Parse(line string) Command {
	if m := moveRe.FindStringSubmatch(line); m != nil {
		return Command{Kind: Move, ID: parseID(m[1]), Label: m[1], Date: m[2]}
	}
	if m := createRe.FindStringSubmatch(line); m != nil {
		return Command{Kind: Create, Body: m[1], Category: m[2], Date: m[3]}
	}
	if m := deleteRe.FindStringSubmatch(line); m != nil {
		return Command{Kind: Delete, ID: parseID(m[1]), Label: m[1]}
	}
	if k, ok := simple[line]; ok {
		return Command{Kind: k}
	}
	return Command{Kind: Invalid}
}

// parseID converts a matched run of digits. Ids too large for an int label
// no task, so they map to -1 and the list reports them as missing.
func parseID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return id
}
