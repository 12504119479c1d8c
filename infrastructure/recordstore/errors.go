package recordstore

import "fmt"

// ParseError marks a source file that could not be ingested: a missing
// required column, an unreadable row, or a malformed value. It is fatal for
// that file's load but recoverable at the batch level, so one bad file does
// not abort a directory ingest.
type ParseError struct {
	File string
	Line int // 0 when the whole file or its header is at fault
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
