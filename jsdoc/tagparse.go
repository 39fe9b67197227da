package jsdoc

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
)

// seeFallsThroughToAPI makes @see also read a visibility word, as if the
// line were an @api tag. Kept for output compatibility.
//
// TODO: set to false once consumers stop reading visibility from @see.
const seeFallsThroughToAPI = true

var (
	spaceRun      = regexp.MustCompile(` +`)
	typeSeparator = regexp.MustCompile(` *[|,/] *`)
)

// tagLine is a tag split into its name, the space-separated words of its
// first line, and any following lines.
type tagLine struct {
	name  string
	raw   string
	rest  string // following lines, starting with "\n"
	words []string
}

// shift removes and returns the next word, or "" when none are left.
func (t *tagLine) shift() string {
	if len(t.words) == 0 {
		return ""
	}

	w := t.words[0]
	t.words = t.words[1:]

	return w
}

func (t *tagLine) joined() string {
	return strings.Join(t.words, " ")
}

type tagParser func(p *Parser, tl *tagLine, path string) (Tag, error)

// tagParsers is filled in init because parseDetailTag reaches back into
// ParseTag through the extract functions.
var tagParsers map[string]tagParser

func init() {
	tagParsers = map[string]tagParser{
		TagParam:    parseParamTag,
		TagReturn:   parseReturnTag,
		TagSee:      parseSeeTag,
		TagAPI:      parseAPITag,
		TagType:     parseTypeTag,
		TagMemberOf: parseMemberOfTag,
		TagAugments: parseAugmentsTag,
		TagBorrows:  parseBorrowsTag,
		TagDetail:   parseDetailTag,
	}
}

// ParseTag parses a single tag, such as "@param {String} name the name".
// Only the first line is split into words; in multi-line mode the following
// lines are appended verbatim to @param and @return descriptions.
//
// Malformed tags never fail; missing words are left empty. An error is
// returned only when an @detail include cannot be loaded.
func (p *Parser) ParseTag(line, path string) (Tag, error) {
	first, rest := line, ""
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		first, rest = line[:i], line[i:]
	}

	words := spaceRun.Split(first, -1)
	tl := &tagLine{
		name:  strings.Replace(words[0], "@", "", 1),
		raw:   line,
		rest:  rest,
		words: words[1:],
	}

	parse, ok := tagParsers[tl.name]
	if !ok {
		parse = parseStringTag
	}

	return parse(p, tl, path)
}

// ParseTagTypes parses a type list such as "{String|Object}" into its
// names. The braces are dropped and the names are split on "|", "," or "/".
func ParseTagTypes(s string) []string {
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	if s == "" {
		return []string{}
	}

	return typeSeparator.Split(s, -1)
}

func parseParamTag(p *Parser, tl *tagLine, _ string) (Tag, error) {
	types := ParseTagTypes(tl.shift())
	name := tl.shift()

	return &ParamTag{
		Type:        tl.name,
		Types:       types,
		Name:        name,
		Description: p.render(tl.joined() + tl.rest),
	}, nil
}

func parseReturnTag(p *Parser, tl *tagLine, _ string) (Tag, error) {
	types := ParseTagTypes(tl.shift())

	return &ReturnTag{
		Type:        tl.name,
		Types:       types,
		Description: p.render(tl.joined() + tl.rest),
	}, nil
}

func parseSeeTag(_ *Parser, tl *tagLine, _ string) (Tag, error) {
	tag := &SeeTag{Type: tl.name}

	if strings.Contains(tl.raw, "http") {
		if len(tl.words) > 1 {
			tag.Title = tl.shift()
		}

		tag.URL = tl.joined()
	} else {
		tag.Local = tl.joined()
	}

	if seeFallsThroughToAPI {
		tag.Visibility = tl.shift()
	}

	return tag, nil
}

func parseAPITag(_ *Parser, tl *tagLine, _ string) (Tag, error) {
	return &APITag{Type: tl.name, Visibility: tl.shift()}, nil
}

func parseTypeTag(_ *Parser, tl *tagLine, _ string) (Tag, error) {
	return &TypeTag{Type: tl.name, Types: ParseTagTypes(tl.shift())}, nil
}

func parseMemberOfTag(_ *Parser, tl *tagLine, _ string) (Tag, error) {
	return &MemberOfTag{Type: tl.name, Parent: tl.shift()}, nil
}

func parseAugmentsTag(_ *Parser, tl *tagLine, _ string) (Tag, error) {
	return &AugmentsTag{Type: tl.name, OtherClass: tl.shift()}, nil
}

func parseBorrowsTag(_ *Parser, tl *tagLine, _ string) (Tag, error) {
	names := strings.Split(tl.joined(), " as ")
	tag := &BorrowsTag{Type: tl.name, OtherMemberName: names[0]}

	if len(names) > 1 {
		tag.ThisMemberName = names[1]
	}

	return tag, nil
}

// parseDetailTag resolves the referenced file against the directory of
// path. With depth left, the file is parsed with one level less.
func parseDetailTag(p *Parser, tl *tagLine, path string) (Tag, error) {
	tag := &DetailTag{
		Type: tl.name,
		Path: filepath.Join(filepath.Dir(path), tl.shift()),
	}

	if p.depth <= 0 {
		return tag, nil
	}

	p.logger.Debug("including detail",
		slog.String("from", path),
		slog.String("path", tag.Path),
	)

	comments, err := p.nested().ExtractDocSync(tag.Path)
	if err != nil {
		return nil, err
	}

	tag.Comments = comments

	return tag, nil
}

func parseStringTag(_ *Parser, tl *tagLine, _ string) (Tag, error) {
	return &StringTag{Type: tl.name, Text: tl.joined()}, nil
}
