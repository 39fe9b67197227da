package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dead-horse/dox/jsdoc"
	"github.com/dead-horse/dox/stringtest"
)

const sampleJS = "/**\n * Add.\n * @api public\n */\nfunction add(a, b) {}\n"

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestExpandArgs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"lib/a.js":       sampleJS,
		"lib/b.js":       sampleJS,
		"lib/sub/c.js":   sampleJS,
		"lib/readme.txt": "not js",
	})

	tcs := map[string]struct {
		err  error
		args []string
		want []string
	}{
		"plain paths are kept": {
			args: []string{filepath.Join(dir, "missing.js")},
			want: []string{filepath.Join(dir, "missing.js")},
		},
		"star": {
			args: []string{filepath.Join(dir, "lib", "*.js")},
			want: []string{
				filepath.Join(dir, "lib", "a.js"),
				filepath.Join(dir, "lib", "b.js"),
			},
		},
		"double star": {
			args: []string{filepath.Join(dir, "lib", "**", "*.js")},
			want: []string{
				filepath.Join(dir, "lib", "a.js"),
				filepath.Join(dir, "lib", "b.js"),
				filepath.Join(dir, "lib", "sub", "c.js"),
			},
		},
		"no match": {
			args: []string{filepath.Join(dir, "src", "*.js")},
			err:  jsdoc.ErrReadInput,
		},
		"bad pattern": {
			args: []string{filepath.Join(dir, "[")},
			err:  jsdoc.ErrInvalidOption,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := expandArgs(tc.args)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestResolveIndent(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		indent   int
		terminal bool
		want     int
	}{
		"explicit":          {indent: 4, terminal: false, want: 4},
		"explicit zero":     {indent: 0, terminal: true, want: 0},
		"unset on terminal": {indent: -1, terminal: true, want: 2},
		"unset on pipe":     {indent: -1, terminal: false, want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, resolveIndent(tc.indent, tc.terminal))
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	v := map[string]any{"a": []int{1, 2}}

	t.Run("compact json", func(t *testing.T) {
		t.Parallel()

		got, err := encode(v, jsdoc.FormatJSON, 0)
		require.NoError(t, err)
		assert.Equal(t, "{\"a\":[1,2]}\n", string(got))
	})

	t.Run("indented json", func(t *testing.T) {
		t.Parallel()

		got, err := encode(v, jsdoc.FormatJSON, 2)
		require.NoError(t, err)
		assert.Equal(t, stringtest.JoinLF(
			"{",
			`  "a": [`,
			"    1,",
			"    2",
			"  ]",
			"}",
			"",
		), string(got))
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		got, err := encode(v, jsdoc.FormatYAML, 2)
		require.NoError(t, err)

		var decoded map[string][]int
		require.NoError(t, yaml.Unmarshal(got, &decoded))
		assert.Equal(t, map[string][]int{"a": {1, 2}}, decoded)
	})
}

func TestExtractorExtract(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.js": sampleJS,
		"b.js": "var plain = 1;\n",
	})

	a := filepath.Join(dir, "a.js")
	b := filepath.Join(dir, "b.js")
	parser := jsdoc.NewParser(jsdoc.WithRaw(true))

	t.Run("single file prints an array", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer

		ex := &extractor{parser: parser, stdout: &stdout, output: "-", format: jsdoc.FormatJSON, paths: []string{a}}
		require.NoError(t, ex.extract())

		var got []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, false, got[0]["isPrivate"])
		assert.Equal(t, "function add(a, b) {}", got[0]["code"])
	})

	t.Run("several files print an object", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "out.json")

		ex := &extractor{parser: parser, output: out, format: jsdoc.FormatJSON, paths: []string{a, b}}
		require.NoError(t, ex.extract())

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		var got map[string][]map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		require.Contains(t, got, a)
		require.Contains(t, got, b)
		assert.Len(t, got[b], 1)
		assert.Equal(t, []any{}, got[b][0]["tags"])
	})

	t.Run("yaml output", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer

		ex := &extractor{parser: parser, stdout: &stdout, format: jsdoc.FormatYAML, paths: []string{a}}
		require.NoError(t, ex.extract())

		var got []map[string]any
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "function add(a, b) {}", got[0]["code"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		ex := &extractor{parser: parser, stdout: &bytes.Buffer{}, paths: []string{filepath.Join(dir, "nope.js")}}
		require.ErrorIs(t, ex.extract(), jsdoc.ErrReadInput)
	})

	t.Run("unwritable output", func(t *testing.T) {
		t.Parallel()

		ex := &extractor{
			parser: parser,
			output: filepath.Join(dir, "no", "such", "dir", "out.json"),
			format: jsdoc.FormatJSON,
			paths:  []string{a},
		}
		require.ErrorIs(t, ex.extract(), jsdoc.ErrWriteOutput)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"lib/a.js": sampleJS})

	t.Run("writes the output file", func(t *testing.T) {
		t.Parallel()

		cfg := jsdoc.NewConfig()
		cfg.Raw = true
		cfg.Output = filepath.Join(t.TempDir(), "out.json")

		require.NoError(t, run(t.Context(), cfg, []string{filepath.Join(dir, "lib", "*.js")}))

		data, err := os.ReadFile(cfg.Output)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"summary":"Add."`)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		cfg := jsdoc.NewConfig()
		cfg.Format = "xml"

		require.ErrorIs(t, run(t.Context(), cfg, []string{filepath.Join(dir, "lib", "a.js")}), jsdoc.ErrInvalidOption)
	})

	t.Run("negative depth", func(t *testing.T) {
		t.Parallel()

		cfg := jsdoc.NewConfig()
		cfg.Depth = -2

		require.ErrorIs(t, run(t.Context(), cfg, []string{filepath.Join(dir, "lib", "a.js")}), jsdoc.ErrInvalidOption)
	})
}

func TestWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFiles(t, dir, map[string]string{"a.js": sampleJS})

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)

	called := make(chan struct{}, 1)
	done := make(chan error, 1)

	go func() {
		done <- watch(ctx, []string{path}, func() error {
			select {
			case called <- struct{}{}:
			default:
			}

			return nil
		})
	}()

	// The watcher may not be registered yet, so keep writing until it fires.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	timeout := time.After(5 * time.Second)

loop:
	for {
		select {
		case <-called:
			break loop
		case <-ticker.C:
			require.NoError(t, os.WriteFile(path, []byte(sampleJS), 0o644))
		case <-timeout:
			t.Fatal("extract was not called after a write")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatchReplacedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFiles(t, dir, map[string]string{"a.js": sampleJS, "other.js": sampleJS})

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)

	called := make(chan struct{}, 1)
	done := make(chan error, 1)

	go func() {
		done <- watch(ctx, []string{path}, func() error {
			select {
			case called <- struct{}{}:
			default:
			}

			return nil
		})
	}()

	// Editors often save by writing a temporary file and renaming it over
	// the original. Each tick also writes a sibling, which must be ignored.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	timeout := time.After(5 * time.Second)

	for i := 0; ; i++ {
		select {
		case <-called:
			cancel()
			require.NoError(t, <-done)

			return
		case <-ticker.C:
			require.NoError(t, os.WriteFile(filepath.Join(dir, "other.js"), []byte(sampleJS), 0o644))

			tmp := filepath.Join(dir, fmt.Sprintf(".a.js.%d.tmp", i))
			require.NoError(t, os.WriteFile(tmp, []byte(sampleJS), 0o644))
			require.NoError(t, os.Rename(tmp, path))
		case <-timeout:
			t.Fatal("extract was not called after the file was replaced")
		}
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFiles(t, dir, map[string]string{"a.js": sampleJS})

	ctx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
	t.Cleanup(cancel)

	calls := 0
	done := make(chan error, 1)

	go func() {
		done <- watch(ctx, []string{path}, func() error {
			calls++

			return nil
		})
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			assert.Zero(t, calls)

			return
		case <-ticker.C:
			require.NoError(t, os.WriteFile(filepath.Join(dir, "b.js"), []byte(sampleJS), 0o644))
		}
	}
}

func TestWatchMissingFile(t *testing.T) {
	t.Parallel()

	err := watch(t.Context(), []string{filepath.Join(t.TempDir(), "nope.js")}, func() error { return nil })
	require.ErrorIs(t, err, jsdoc.ErrReadInput)
}
