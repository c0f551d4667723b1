// Package input turns raw key codes and submitted lines into commands.
package input

import "strings"

// Command is a parsed input line
type Command struct {
	Raw  string // the trimmed line
	Name string // first token, case preserved
	Arg  string // remaining tokens joined by single spaces, may be empty
}

// ParseLine trims raw and splits it at the first whitespace run.
// Empty or blank lines report false.
func ParseLine(raw string) (Command, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Command{}, false
	}
	fields := strings.Fields(trimmed)
	return Command{
		Raw:  trimmed,
		Name: fields[0],
		Arg:  strings.Join(fields[1:], " "),
	}, true
}

// LastToken splits line at its final space, returning the prefix (including
// the space) and the token being typed.
func LastToken(line string) (prefix, token string) {
	i := strings.LastIndex(line, " ")
	if i < 0 {
		return "", line
	}
	return line[:i+1], line[i+1:]
}
