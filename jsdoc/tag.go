package jsdoc

import (
	"encoding/json"
)

// Tag names with a dedicated grammar. Any other name produces a [StringTag].
const (
	TagParam    = "param"
	TagReturn   = "return"
	TagSee      = "see"
	TagAPI      = "api"
	TagType     = "type"
	TagMemberOf = "memberOf"
	TagAugments = "augments"
	TagBorrows  = "borrows"
	TagDetail   = "detail"
)

// Tag is one parsed "@name ..." line. The concrete type is one of
// [*ParamTag], [*ReturnTag], [*SeeTag], [*APITag], [*TypeTag],
// [*MemberOfTag], [*AugmentsTag], [*BorrowsTag], [*DetailTag] or
// [*StringTag].
type Tag interface {
	// TagType returns the tag name without the leading "@".
	TagType() string
	tag()
}

// ParamTag is "@param {Types} name description".
type ParamTag struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Types       []string `json:"types"`
}

// ReturnTag is "@return {Types} description".
type ReturnTag struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Types       []string `json:"types"`
}

// SeeTag is "@see reference" or "@see [title] url".
//
// Visibility holds the first word after the tag, the same way an [APITag]
// would read it.
type SeeTag struct {
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	Local      string `json:"local,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}

// APITag is "@api visibility", for example "@api private".
type APITag struct {
	Type       string `json:"type"`
	Visibility string `json:"visibility,omitempty"`
}

// TypeTag is "@type {Types}".
type TypeTag struct {
	Type  string   `json:"type"`
	Types []string `json:"types"`
}

// MemberOfTag is "@memberOf parent".
type MemberOfTag struct {
	Type   string `json:"type"`
	Parent string `json:"parent,omitempty"`
}

// AugmentsTag is "@augments otherClass".
type AugmentsTag struct {
	Type       string `json:"type"`
	OtherClass string `json:"otherClass,omitempty"`
}

// BorrowsTag is "@borrows otherMemberName as thisMemberName".
type BorrowsTag struct {
	Type            string `json:"type"`
	OtherMemberName string `json:"otherMemberName"`
	ThisMemberName  string `json:"thisMemberName,omitempty"`
}

// DetailTag is "@detail ./relative/path.js".
//
// Path is the reference resolved against the directory of the file being
// parsed. Comments holds the parsed contents of that file when the parser
// still had include depth left, and is nil otherwise. In JSON the "detail"
// key carries Comments when set and Path otherwise.
type DetailTag struct {
	Type     string
	Path     string
	Comments []*Comment
}

// Included reports whether the referenced file was parsed.
func (t *DetailTag) Included() bool {
	return t.Comments != nil
}

// MarshalJSON implements [json.Marshaler].
func (t *DetailTag) MarshalJSON() ([]byte, error) {
	var detail any = t.Path
	if t.Included() {
		detail = t.Comments
	}

	return json.Marshal(struct {
		Detail any    `json:"detail"`
		Type   string `json:"type"`
	}{
		Type:   t.Type,
		Detail: detail,
	})
}

// StringTag is any tag without a dedicated grammar. Text is the rest of the
// first line.
type StringTag struct {
	Type string `json:"type"`
	Text string `json:"string"`
}

func (t *ParamTag) TagType() string    { return t.Type }
func (t *ReturnTag) TagType() string   { return t.Type }
func (t *SeeTag) TagType() string      { return t.Type }
func (t *APITag) TagType() string      { return t.Type }
func (t *TypeTag) TagType() string     { return t.Type }
func (t *MemberOfTag) TagType() string { return t.Type }
func (t *AugmentsTag) TagType() string { return t.Type }
func (t *BorrowsTag) TagType() string  { return t.Type }
func (t *DetailTag) TagType() string   { return t.Type }
func (t *StringTag) TagType() string   { return t.Type }

func (*ParamTag) tag()    {}
func (*ReturnTag) tag()   {}
func (*SeeTag) tag()      {}
func (*APITag) tag()      {}
func (*TypeTag) tag()     {}
func (*MemberOfTag) tag() {}
func (*AugmentsTag) tag() {}
func (*BorrowsTag) tag()  {}
func (*DetailTag) tag()   {}
func (*StringTag) tag()   {}
