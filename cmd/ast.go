package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		p := parser.New(string(src), parser.WithFilename(path))
		file := p.ParseFile()

		diags := p.Diagnostics()
		if len(diags) > 0 {
			logger.Debug("diagnostics while dumping tree", zap.Int("count", len(diags)))
			formatter := diag.NewFormatter(os.Stderr)
			formatter.AddSource(path, string(src))
			formatter.FormatAll(diags)
		}

		fmt.Print(ast.Print(file))
	},
}
