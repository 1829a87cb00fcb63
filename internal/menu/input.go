package menu

import (
	"bufio"
	"io"
	"strings"
)

// tokenReader splits console input into whitespace-delimited tokens. A token
// may be followed by more tokens on the same line, so a line such as
// "3 notes.txt" answers both the choice and the filename prompt.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(in io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(in)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// next skips leading whitespace and returns the following token. The
// delimiter that ends the token is left unread. io.EOF is returned only
// when no token could be read at all.
func (t *tokenReader) next() (string, error) {
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			if err := t.r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
	}

	var sb strings.Builder
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			return sb.String(), t.r.UnreadByte()
		}
		sb.WriteByte(b)
	}
}

// discardLine drops everything up to and including the next newline
func (t *tokenReader) discardLine() error {
	_, err := t.r.ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}
