package jsdoc

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// starPrefix matches the " * " decoration at the start of comment lines.
var starPrefix = regexp.MustCompile(`(?m)^ *\* ?`)

type scanState int

const (
	inCode scanState = iota
	inBlockComment
	inLineComment
)

// ParseComments scans src for block comments and returns one [Comment] per
// comment, in source order. Code between a comment and the next one (or the
// end of input) is attached to the comment as Code, with Ctx inferred from
// its first line.
//
// Line comments are not documentation; their text is kept as part of the
// surrounding code. When src holds no block comment at all, the result is
// a single empty Comment. The path is used to resolve @detail references.
//
// The only errors come from loading files named by @detail tags.
func (p *Parser) ParseComments(src, path string) ([]*Comment, error) {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	var (
		comments []*Comment
		buf      strings.Builder
		state    = inCode
		ignore   bool
	)

	for i := 0; i < len(src); i++ {
		c := src[i]

		var next byte
		if i+1 < len(src) {
			next = src[i+1]
		}

		switch {
		case state == inCode && c == '/' && next == '*':
			attachCode(comments, buf.String())
			buf.Reset()

			i += 2
			state = inBlockComment
			ignore = i < len(src) && src[i] == '!'
			i += lookaheadWidth(src, i) - 1

		case state == inBlockComment && c == '*' && next == '/':
			i += 2
			i += lookaheadWidth(src, i) - 1

			body := starPrefix.ReplaceAllString(buf.String(), "")
			buf.Reset()

			comment, err := p.ParseComment(body, path)
			if err != nil {
				return nil, err
			}

			comment.Ignore = ignore
			comments = append(comments, comment)
			state = inCode
			ignore = false

		case state == inCode && c == '/' && next == '/':
			state = inLineComment

			buf.WriteByte(c)

		case state == inLineComment && c == '\n':
			state = inCode

			buf.WriteByte(c)

		default:
			buf.WriteByte(c)
		}
	}

	if len(comments) == 0 {
		return []*Comment{emptyComment()}, nil
	}

	attachCode(comments, buf.String())

	p.logger.Debug("scanned comments",
		slog.String("path", path),
		slog.Int("count", len(comments)),
	)

	return comments, nil
}

// attachCode sets code on the last comment, if any.
func attachCode(comments []*Comment, code string) {
	code = strings.TrimSpace(code)
	if code == "" || len(comments) == 0 {
		return
	}

	last := comments[len(comments)-1]
	last.Code = code
	last.Ctx = ParseCodeContext(code)
}

// lookaheadWidth returns the byte width of the character at i, which the
// scanner consumes together with a comment delimiter. It is 1 past the end
// of src.
func lookaheadWidth(src string, i int) int {
	if i >= len(src) {
		return 1
	}

	_, size := utf8.DecodeRuneInString(src[i:])

	return size
}
