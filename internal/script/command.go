// Package script parses landctl command scripts.
//
// A script holds one command per line. Fields are separated by whitespace;
// a field wrapped in double quotes may contain spaces, and \" or \\ inside
// quotes escape a quote or a backslash. An unquoted # starts a comment that
// runs to the end of the line.
//
//	# seed
//	add Prague Thakurova Dejvice 12345
//	chown-id Dejvice 12345 "Anton Hrabis"
//	list-owner "anton hrabis"
package script

import "fmt"

// Op identifies a script command.
type Op int

const (
	OpInvalid Op = iota
	OpAdd
	OpDeleteByLocation
	OpDeleteByRegion
	OpOwnerByLocation
	OpOwnerByRegion
	OpChangeOwnerByLocation
	OpChangeOwnerByRegion
	OpCount
	OpList
	OpListOwner
	OpStats
)

// opEntry describes how a command word maps to an Op and its fields.
type opEntry struct {
	op    Op
	shape []field
}

type field int

const (
	fieldCity field = iota
	fieldAddress
	fieldRegion
	fieldID
	fieldOwner
)

var opTable = map[string]opEntry{
	WordAdd:             {OpAdd, []field{fieldCity, fieldAddress, fieldRegion, fieldID}},
	WordDeleteByAddress: {OpDeleteByLocation, []field{fieldCity, fieldAddress}},
	WordDeleteByID:      {OpDeleteByRegion, []field{fieldRegion, fieldID}},
	WordOwnerByAddress:  {OpOwnerByLocation, []field{fieldCity, fieldAddress}},
	WordOwnerByID:       {OpOwnerByRegion, []field{fieldRegion, fieldID}},
	WordChownByAddress:  {OpChangeOwnerByLocation, []field{fieldCity, fieldAddress, fieldOwner}},
	WordChownByID:       {OpChangeOwnerByRegion, []field{fieldRegion, fieldID, fieldOwner}},
	WordCount:           {OpCount, []field{fieldOwner}},
	WordList:            {OpList, nil},
	WordListOwner:       {OpListOwner, []field{fieldOwner}},
	WordStats:           {OpStats, nil},
}

var opWords = func() map[Op]string {
	m := make(map[Op]string, len(opTable))
	for w, s := range opTable {
		m[s.op] = w
	}
	return m
}()

// String returns the command word for o.
func (o Op) String() string {
	if w, ok := opWords[o]; ok {
		return w
	}
	return "invalid"
}

// Mutates reports whether o changes registry state.
func (o Op) Mutates() bool {
	switch o {
	case OpAdd, OpDeleteByLocation, OpDeleteByRegion,
		OpChangeOwnerByLocation, OpChangeOwnerByRegion:
		return true
	default:
		return false
	}
}

// Command is one parsed script line. Only the fields the Op uses are set.
type Command struct {
	Line    int
	Op      Op
	City    string
	Address string
	Region  string
	ID      uint64
	Owner   string
}

// String renders c back in script syntax.
func (c Command) String() string {
	entry := opTable[c.Op.String()]
	out := c.Op.String()
	for _, f := range entry.shape {
		switch f {
		case fieldCity:
			out += " " + quote(c.City)
		case fieldAddress:
			out += " " + quote(c.Address)
		case fieldRegion:
			out += " " + quote(c.Region)
		case fieldID:
			out += fmt.Sprintf(" %d", c.ID)
		case fieldOwner:
			out += " " + quote(c.Owner)
		}
	}
	return out
}

// ParseError reports a malformed script line.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("script: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("script: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
