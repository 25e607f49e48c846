package source

import (
	"fmt"
)

type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// NewSpan builds a span from an (offset, length) pair.
func NewSpan(file FileID, offset, length uint32) Span {
	return Span{File: file, Start: offset, End: offset + length}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Offset is the byte offset of the first byte covered by the span.
func (s Span) Offset() uint32 {
	return s.Start
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// To returns the span running from the start of s to the end of right.
// It does not look at right.Start or s.End, so
//
//	(o1, l1).To((o2, l2)) == (o1, o2+l2-o1)
//
// for any right span that ends at or after s.Start.
func (s Span) To(right Span) Span {
	end := right.End
	if end < s.Start {
		end = s.Start
	}
	return Span{File: s.File, Start: s.Start, End: end}
}
