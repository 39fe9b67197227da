// Package log builds [log/slog] handlers from command-line flags.
//
// It supports three output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText]) and four levels ([LevelError], [LevelWarn], [LevelInfo],
// and [LevelDebug]). Use [NewHandler] to create a handler directly, or use
// [Config] with CLI flag integration via [github.com/spf13/pflag] and shell
// completion support via [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// Debug output from the extractor (files loaded, @detail includes followed,
// comments found per file) is only visible at [LevelDebug].
package log
