package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Parse source files and report diagnostics",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "error: please provide source files")
			os.Exit(1)
		}

		formatter := diag.NewFormatter(os.Stderr)

		errCount := 0
		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				logger.Error("failed to read source file", zap.String("path", path), zap.Error(err))
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				errCount++
				continue
			}

			start := time.Now()
			p := parser.New(string(src), parser.WithFilename(path))
			p.ParseFile()
			logger.Debug("parsed file",
				zap.String("path", path),
				zap.Duration("elapsed", time.Since(start)),
				zap.Int("diagnostics", len(p.Diagnostics())))

			formatter.AddSource(path, string(src))
			errCount += formatter.FormatAll(p.Diagnostics())
		}

		if errCount > 0 {
			fmt.Fprintf(os.Stderr, "%d error(s) found\n", errCount)
			os.Exit(1)
		}
	},
}
