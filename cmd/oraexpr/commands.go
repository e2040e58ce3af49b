package main

import (
	"encoding/json"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/parser"
)

const flagJSON = "json"

// NewParseCommand returns the command that prints the tree of an expression.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "parse an expression and print its tree",
		Long:  "Parse an expression given as arguments, or read from standard input, and print its tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			expr, err := parser.ParseString(cmd.Context(), src, parserOptions()...)
			if err != nil {
				return err
			}
			return printNode(cmd, expr)
		},
	}
	cmd.Flags().Bool(flagJSON, false, "print the tree as JSON")
	return cmd
}

// NewFormatCommand returns the command that prints an expression in
// canonical form.
func NewFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format [expression]",
		Short: "parse an expression and print it in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			expr, err := parser.ParseString(cmd.Context(), src, parserOptions()...)
			if err != nil {
				return err
			}
			cmd.Println(parser.Format(expr))
			return nil
		},
	}
}

// NewDataTypeCommand returns the command that parses a data type.
func NewDataTypeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datatype [type]",
		Short: "parse a data type and print its tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			dt, err := parser.ParseDataType(cmd.Context(), strings.NewReader(src), parserOptions()...)
			if err != nil {
				return err
			}
			return printNode(cmd, dt)
		},
	}
	cmd.Flags().Bool(flagJSON, false, "print the tree as JSON")
	return cmd
}

// NewBatchCommand returns the command that parses every expression in a
// file of semicolon-separated expressions.
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "parse the semicolon-separated expressions of a file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := cmd.Flags().GetInt("concurrency")
			if err != nil {
				return errors.Trace(err)
			}
			if !cmd.Flags().Changed("concurrency") {
				limit = conf.Batch.Concurrency
			}

			exprs, err := parser.ParseFile(cmd.Context(), args[0], limit, parserOptions()...)
			if err != nil {
				return err
			}
			log.Info("batch parsed",
				zap.String("file", args[0]),
				zap.Int("expressions", len(exprs)),
				zap.Int("concurrency", limit))

			for i, expr := range exprs {
				cmd.Printf("-- %d\n", i+1)
				if err := printNode(cmd, expr); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool(flagJSON, false, "print the trees as JSON")
	cmd.Flags().IntP("concurrency", "j", 0, "number of expressions parsed at once, overrides the config file")
	return cmd
}

func printNode(cmd *cobra.Command, node ast.Node) error {
	asJSON, err := cmd.Flags().GetBool(flagJSON)
	if err != nil {
		return errors.Trace(err)
	}
	if !asJSON {
		cmd.Print(parser.Explain(node))
		return nil
	}
	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return errors.Trace(err)
	}
	cmd.Println(string(data))
	return nil
}
