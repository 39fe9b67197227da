// Package jsdoc extracts documentation comments from JavaScript-style source
// text.
//
// Every block comment ("/* ... */") becomes a [Comment] holding a
// Markdown-rendered description, the tags written as "@name ..." lines, and
// the code that follows the comment together with the declaration inferred
// from that code. No JavaScript is parsed: declarations are recognized by
// matching the first line of code against a small set of patterns.
//
// # Pipeline
//
// [Parser.ParseComments] runs three stages over an in-memory string:
//
//  1. Scan: a single pass tracks whether each character is inside a block
//     comment, inside a line comment, or in code. Comment bodies have their
//     " * " line decoration removed. Line comments are not documentation;
//     their text stays with the code around them. A comment opened with
//     "/*!" is marked with [Comment.Ignore], the convention for license
//     banners.
//
//  2. Parse: [Parser.ParseComment] splits a body into its [Description]
//     (full text, summary up to the first blank line, and the rest) and its
//     tag lines, each handed to [Parser.ParseTag]. Tag names are dispatched
//     through a table to a grammar per name; unknown names produce a
//     [StringTag]. A comment tagged "@api private" has IsPrivate set.
//
//  3. Infer: [ParseCodeContext] tries, in order, a function statement, a
//     function expression, a prototype method, a prototype property, a
//     method, a property and a variable declaration. The first match wins.
//
// The parser never fails on malformed input. Missing words leave fields
// empty and unrecognized code yields no context.
//
// # Includes
//
// "@detail ./other.js" references another file, resolved against the
// directory of the file being parsed. With [WithDepth] above zero the file
// is loaded through the [Loader] and parsed with one level less, and the
// [DetailTag] carries the nested comments. Otherwise it carries the
// resolved path only. There is no cycle detection; depth is the only bound.
// Load failures anywhere in the chain are returned wrapped in
// [ErrReadInput].
//
// # Rendering
//
// Unless [WithRaw] is set, descriptions and @param/@return text are passed
// through the [Renderer], by default GitHub-flavored Markdown to HTML from
// package [github.com/dead-horse/dox/jsdoc/gfm].
//
// # Usage
//
//	p := jsdoc.NewParser(jsdoc.WithRaw(true), jsdoc.WithDepth(1))
//
//	comments, err := p.ExtractDocSync("lib/index.js")
//	if err != nil {
//		return err
//	}
//
//	out, err := json.Marshal(comments)
//
// [Parser.ExtractDoc] does the same without blocking the caller.
package jsdoc
