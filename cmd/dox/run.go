package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-yaml"
	"golang.org/x/term"

	"github.com/dead-horse/dox/jsdoc"
)

// extractor parses a fixed set of files and writes the result.
type extractor struct {
	parser *jsdoc.Parser
	stdout io.Writer
	output string
	format jsdoc.Format
	paths  []string
	indent int
}

func run(ctx context.Context, cfg *jsdoc.Config, args []string) error {
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	parser, err := cfg.NewParser(jsdoc.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	paths, err := expandArgs(args)
	if err != nil {
		return err
	}

	toStdout := cfg.Output == "" || cfg.Output == "-"

	ex := &extractor{
		parser: parser,
		stdout: os.Stdout,
		output: cfg.Output,
		format: format,
		paths:  paths,
		indent: resolveIndent(cfg.Indent, toStdout && term.IsTerminal(int(os.Stdout.Fd()))),
	}

	err = ex.extract()
	if err != nil {
		return err
	}

	if !cfg.Watch {
		return nil
	}

	return watch(ctx, paths, ex.extract)
}

// expandArgs expands glob patterns. Plain paths are kept as given so that a
// missing file is reported by the loader.
func expandArgs(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)

			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %w", jsdoc.ErrInvalidOption, arg, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: no files match %q", jsdoc.ErrReadInput, arg)
		}

		paths = append(paths, matches...)
	}

	return paths, nil
}

// resolveIndent picks the JSON indentation when the flag was left unset.
func resolveIndent(indent int, terminal bool) int {
	if indent >= 0 {
		return indent
	}

	if terminal {
		return 2
	}

	return 0
}

func (ex *extractor) extract() error {
	var result any

	if len(ex.paths) == 1 {
		comments, err := ex.parser.ExtractDocSync(ex.paths[0])
		if err != nil {
			return err
		}

		result = comments
	} else {
		byPath := make(map[string][]*jsdoc.Comment, len(ex.paths))

		for _, path := range ex.paths {
			comments, err := ex.parser.ExtractDocSync(path)
			if err != nil {
				return err
			}

			byPath[path] = comments
		}

		result = byPath
	}

	out, err := encode(result, ex.format, ex.indent)
	if err != nil {
		return err
	}

	return ex.write(out)
}

func (ex *extractor) write(out []byte) error {
	if ex.output == "" || ex.output == "-" {
		_, err := ex.stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(ex.output, out, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
	}

	return nil
}

// encode renders v as JSON, or as YAML converted from that JSON so that
// custom JSON encodings (such as @detail tags) carry over.
func encode(v any, format jsdoc.Format, indent int) ([]byte, error) {
	var (
		out []byte
		err error
	)

	if indent > 0 && format == jsdoc.FormatJSON {
		out, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
	}

	if format == jsdoc.FormatYAML {
		out, err = yaml.JSONToYAML(out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
		}

		return out, nil
	}

	return append(out, '\n'), nil
}

// watch calls extract each time one of paths is written or replaced, until
// ctx is done. The parent directories are watched rather than the files, so
// that saves which rename a new file over the old one keep being seen.
func watch(ctx context.Context, paths []string, extract func() error) error {
	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)

	for _, path := range paths {
		_, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: watching %s: %w", jsdoc.ErrReadInput, path, err)
		}

		path = filepath.Clean(path)
		targets[path] = true
		dirs[filepath.Dir(path)] = true
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	defer func() {
		closeErr := w.Close()
		if closeErr != nil {
			slog.Warn("close watcher", slog.Any("error", closeErr))
		}
	}()

	for dir := range dirs {
		err := w.Add(dir)
		if err != nil {
			return fmt.Errorf("%w: watching %s: %w", jsdoc.ErrReadInput, dir, err)
		}
	}

	slog.Info("watching for changes", slog.Int("files", len(paths)))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !targets[filepath.Clean(ev.Name)] {
				continue
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			slog.Debug("source changed", slog.String("path", ev.Name))

			err := extract()
			if err != nil {
				slog.Error("extract", slog.String("path", ev.Name), slog.Any("error", err))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watch", slog.Any("error", err))
		}
	}
}
