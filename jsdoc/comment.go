package jsdoc

import (
	"strings"
)

// Comment is one documentation comment and the code that follows it.
type Comment struct {
	Ctx         *CodeContext `json:"ctx,omitempty"`
	Code        string       `json:"code,omitempty"`
	Description Description  `json:"description"`
	Tags        []Tag        `json:"tags"`
	IsPrivate   bool         `json:"isPrivate"`
	Ignore      bool         `json:"ignore"` // opened with "/*!"
}

// Description is the free text that precedes a comment's tags.
type Description struct {
	Full    string `json:"full"`
	Summary string `json:"summary"` // up to the first blank line
	Body    string `json:"body"`    // after the first blank line
}

func emptyComment() *Comment {
	return &Comment{Tags: []Tag{}}
}

// ParseComment parses the body of a single comment, with the "*" line
// decoration already removed. Code and Ctx are left empty.
//
// Everything before the first line starting with "@" is the description.
// In single-line mode each line from there on is parsed as its own tag;
// in multi-line mode a tag runs until the next line starting with "@".
func (p *Parser) ParseComment(body, path string) (*Comment, error) {
	body = strings.TrimSpace(body)
	comment := emptyComment()

	if !strings.HasPrefix(body, "@") {
		full, _, _ := strings.Cut(body, "\n@")
		summary, rest, _ := strings.Cut(full, "\n\n")
		comment.Description = Description{
			Full:    full,
			Summary: summary,
			Body:    rest,
		}
	}

	region := body
	if strings.HasPrefix(region, "@") {
		region = "\n" + region
	}

	if _, tags, ok := strings.Cut(region, "\n@"); ok {
		sep := "\n"
		if p.multiLine {
			sep = "\n@"
		}

		for line := range strings.SplitSeq("@"+tags, sep) {
			tag, err := p.ParseTag(line, path)
			if err != nil {
				return nil, err
			}

			if api, ok := tag.(*APITag); ok && api.Visibility == "private" {
				comment.IsPrivate = true
			}

			comment.Tags = append(comment.Tags, tag)
		}
	}

	comment.Description.Full = p.render(comment.Description.Full)
	comment.Description.Summary = p.render(comment.Description.Summary)
	comment.Description.Body = p.render(comment.Description.Body)

	return comment, nil
}
