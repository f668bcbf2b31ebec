package script

// Lexical tokens.
const (
	CommentPrefix = "#"
	Quote         = '"'
	Escape        = '\\'
	CR            = "\r"
)

// Command words as they appear in a script.
const (
	WordAdd             = "add"
	WordDeleteByAddress = "del-addr"
	WordDeleteByID      = "del-id"
	WordOwnerByAddress  = "owner-addr"
	WordOwnerByID       = "owner-id"
	WordChownByAddress  = "chown-addr"
	WordChownByID       = "chown-id"
	WordCount           = "count"
	WordList            = "list"
	WordListOwner       = "list-owner"
	WordStats           = "stats"
)
