/*
Package parser turns a plain-text board document into a board.Board.

The document format is a sequence of columns. Each column is a
"## Heading" line followed by zero or more card lines of the form

	- [x] Ship the release@{2024-03-07}@@{14:30}

where "x" marks a complete card and a single space an incomplete one,
and the date and time annotations are optional (date always before
time). The parser is a hand-written recursive descent over a byte
cursor with ordered choice and full backtracking: rules attempt a
match from a given offset and either return the new offset or leave
the cursor where it was. Whitespace between structural elements is
skipped implicitly; inside a card line, a heading line, or any of the
lexical atoms it is significant.

A failed card attempt is not an error. The card repetition simply
stops, and whatever remains is reconsidered at the column and document
level. Only the document rule reports failure, carrying the deepest
offset reached during the descent and the set of tokens that were
still expected there.

Date and time numerics are taken as written; the parser performs no
calendar or range validation.
*/
package parser
