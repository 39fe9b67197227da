package jsdoc

import (
	"github.com/google/jsonschema-go/jsonschema"
)

const (
	typeArray  = "array"
	typeObject = "object"
	typeString = "string"
)

// ResultSchema returns a JSON Schema (Draft 7) describing the JSON encoding
// of a []*Comment, as returned by [Parser.ParseComments].
func ResultSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "dox comments",
		Description: "Documentation comments extracted from a source file, in source order.",
		Type:        typeArray,
		Items:       ref("comment"),
		MinItems:    jsonschema.Ptr(1),
		Definitions: map[string]*jsonschema.Schema{
			"comment": commentSchema(),
			"tag":     tagSchema(),
			"context": contextSchema(),
		},
	}
}

func ref(name string) *jsonschema.Schema {
	return &jsonschema.Schema{Ref: "#/definitions/" + name}
}

func str(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: typeString, Description: desc}
}

func strList(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        typeArray,
		Description: desc,
		Items:       &jsonschema.Schema{Type: typeString},
	}
}

func commentSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     typeObject,
		Required: []string{"tags", "description", "isPrivate", "ignore"},
		Properties: map[string]*jsonschema.Schema{
			"tags": {
				Type:  typeArray,
				Items: ref("tag"),
			},
			"description": {
				Type:     typeObject,
				Required: []string{"full", "summary", "body"},
				Properties: map[string]*jsonschema.Schema{
					"full":    str("Text before the first tag."),
					"summary": str("Text up to the first blank line."),
					"body":    str("Text after the first blank line."),
				},
			},
			"isPrivate": {Type: "boolean", Description: `True when tagged "@api private".`},
			"ignore":    {Type: "boolean", Description: `True for comments opened with "/*!".`},
			"code":      str("Code following the comment."),
			"ctx":       ref("context"),
		},
	}
}

func tagSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     typeObject,
		Required: []string{"type"},
		Properties: map[string]*jsonschema.Schema{
			"type":            str(`Tag name without the leading "@".`),
			"types":           strList("Type names of @param, @return and @type."),
			"name":            str("@param name."),
			"description":     str("@param and @return description."),
			"title":           str("@see link title."),
			"url":             str("@see link URL."),
			"local":           str("@see local reference."),
			"visibility":      str("@api (and @see) visibility."),
			"parent":          str("@memberOf parent."),
			"otherClass":      str("@augments class."),
			"otherMemberName": str("@borrows source member."),
			"thisMemberName":  str("@borrows target member."),
			"string":          str("Text of tags without a dedicated grammar."),
			"detail": {
				Description: "@detail resolved path, or the comments of the included file.",
				AnyOf: []*jsonschema.Schema{
					{Type: typeString},
					{Type: typeArray, Items: ref("comment")},
				},
			},
		},
	}
}

func contextSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     typeObject,
		Required: []string{"type", "name", "string"},
		Properties: map[string]*jsonschema.Schema{
			"type": {
				Type: typeString,
				Enum: []any{
					string(ContextFunction),
					string(ContextMethod),
					string(ContextProperty),
					string(ContextDeclaration),
				},
			},
			"constructor": str("Constructor of a prototype member."),
			"receiver":    str("Object a member is assigned on."),
			"name":        str("Declared name."),
			"value":       str("Assigned value of a property or declaration."),
			"string":      str("Display form, such as Foo.prototype.bar()."),
		},
	}
}
