package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a whole script. It stops at the first malformed line.
func Parse(r io.Reader) ([]Command, error) {
	scanner := bufio.NewScanner(r)
	var cmds []Command
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, ok, err := ParseLine(lineNo, scanner.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// ParseLine parses a single line. ok is false for blank and comment-only
// lines.
func ParseLine(lineNo int, line string) (cmd Command, ok bool, err error) {
	fields, err := split(strings.TrimRight(line, CR))
	if err != nil {
		return Command{}, false, &ParseError{Line: lineNo, Msg: "bad quoting", Err: err}
	}
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	word, args := fields[0], fields[1:]
	entry, known := opTable[word]
	if !known {
		return Command{}, false, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unknown command %q", word)}
	}
	if len(args) != len(entry.shape) {
		return Command{}, false, &ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("%s: expected %d argument(s), got %d", word, len(entry.shape), len(args)),
		}
	}

	cmd = Command{Line: lineNo, Op: entry.op}
	for i, f := range entry.shape {
		switch f {
		case fieldCity:
			cmd.City = args[i]
		case fieldAddress:
			cmd.Address = args[i]
		case fieldRegion:
			cmd.Region = args[i]
		case fieldOwner:
			cmd.Owner = args[i]
		case fieldID:
			id, err := strconv.ParseUint(args[i], 10, 64)
			if err != nil {
				return Command{}, false, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad id %q", args[i]), Err: err}
			}
			cmd.ID = id
		}
	}
	return cmd, true, nil
}

var errUnterminated = errors.New("unterminated quoted field")

// split breaks line into fields, honouring double quotes and comments.
func split(line string) ([]string, error) {
	var (
		fields []string
		cur    strings.Builder
		inTok  bool
		inQ    bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inQ {
			switch c {
			case Escape:
				if i+1 < len(line) && (line[i+1] == Quote || line[i+1] == Escape) {
					i++
					cur.WriteByte(line[i])
				} else {
					cur.WriteByte(c)
				}
			case Quote:
				inQ = false
			default:
				cur.WriteByte(c)
			}
			continue
		}
		switch {
		case c == ' ' || c == '\t':
			if inTok {
				fields = append(fields, cur.String())
				cur.Reset()
				inTok = false
			}
		case c == Quote:
			inQ, inTok = true, true
		case c == CommentPrefix[0]:
			i = len(line)
		default:
			cur.WriteByte(c)
			inTok = true
		}
	}
	if inQ {
		return nil, errUnterminated
	}
	if inTok {
		fields = append(fields, cur.String())
	}
	return fields, nil
}

// quote renders s as a single script field.
func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"\\#") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
