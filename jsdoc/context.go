package jsdoc

import (
	"regexp"
	"strings"
	"unicode"
)

// ContextType is the kind of declaration a comment documents.
type ContextType string

// Context types.
const (
	ContextFunction    ContextType = "function"
	ContextMethod      ContextType = "method"
	ContextProperty    ContextType = "property"
	ContextDeclaration ContextType = "declaration"
)

// CodeContext describes the declaration that follows a comment.
//
// Constructor is set for prototype members, Receiver for members assigned
// on another object. Value is set for properties and declarations.
type CodeContext struct {
	Type        ContextType `json:"type"`
	Constructor string      `json:"constructor,omitempty"`
	Receiver    string      `json:"receiver,omitempty"`
	Name        string      `json:"name"`
	Value       string      `json:"value,omitempty"`
	Display     string      `json:"string"` // e.g. "Foo.prototype.bar()"
}

type contextRule struct {
	pattern *regexp.Regexp
	build   func(m []string) *CodeContext
}

// contextRules are tried in order. Function forms must come before the
// property forms, which would otherwise match them too.
var contextRules = []contextRule{
	{
		// function foo(
		pattern: regexp.MustCompile(`^function (\w+) *\(`),
		build: func(m []string) *CodeContext {
			return &CodeContext{Type: ContextFunction, Name: m[1], Display: m[1] + "()"}
		},
	},
	{
		// var foo = function
		pattern: regexp.MustCompile(`^var *(\w+) *= *function`),
		build: func(m []string) *CodeContext {
			return &CodeContext{Type: ContextFunction, Name: m[1], Display: m[1] + "()"}
		},
	},
	{
		// Foo.prototype.bar = function
		pattern: regexp.MustCompile(`^(\w+)\.prototype\.(\w+) *= *function`),
		build: func(m []string) *CodeContext {
			return &CodeContext{
				Type:        ContextMethod,
				Constructor: m[1],
				Name:        m[2],
				Display:     m[1] + ".prototype." + m[2] + "()",
			}
		},
	},
	{
		// Foo.prototype.bar = value, displayed with the dot as "Foo.prototype.bar"
		pattern: regexp.MustCompile(`^(\w+)\.prototype\.(\w+) *= *([^\s;].*)`),
		build: func(m []string) *CodeContext {
			return &CodeContext{
				Type:        ContextProperty,
				Constructor: m[1],
				Name:        m[2],
				Value:       trimValue(m[3]),
				Display:     m[1] + ".prototype." + m[2],
			}
		},
	},
	{
		// foo.bar = function
		pattern: regexp.MustCompile(`^(\w+)\.(\w+) *= *function`),
		build: func(m []string) *CodeContext {
			return &CodeContext{
				Type:     ContextMethod,
				Receiver: m[1],
				Name:     m[2],
				Display:  m[1] + "." + m[2] + "()",
			}
		},
	},
	{
		// foo.bar = value
		pattern: regexp.MustCompile(`^(\w+)\.(\w+) *= *([^\s;].*)`),
		build: func(m []string) *CodeContext {
			return &CodeContext{
				Type:     ContextProperty,
				Receiver: m[1],
				Name:     m[2],
				Value:    trimValue(m[3]),
				Display:  m[1] + "." + m[2],
			}
		},
	},
	{
		// var foo = value
		pattern: regexp.MustCompile(`^var +(\w+) *= *([^\s;].*)`),
		build: func(m []string) *CodeContext {
			return &CodeContext{
				Type:    ContextDeclaration,
				Name:    m[1],
				Value:   trimValue(m[2]),
				Display: m[1],
			}
		},
	},
}

// ParseCodeContext infers the declaration on the first line of code. It
// returns nil when the line matches none of the known forms.
func ParseCodeContext(code string) *CodeContext {
	line, _, _ := strings.Cut(code, "\n")

	for _, rule := range contextRules {
		if m := rule.pattern.FindStringSubmatch(line); m != nil {
			return rule.build(m)
		}
	}

	return nil
}

func trimValue(v string) string {
	return strings.TrimRightFunc(v, unicode.IsSpace)
}
