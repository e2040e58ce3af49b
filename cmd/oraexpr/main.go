// Command oraexpr parses Oracle SQL expressions and prints their trees.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		sig := <-sc
		log.Warn("received signal to exit", zap.Stringer("signal", sig))
		cancel()
		<-sc
		os.Exit(1)
	}()

	rootCmd := NewRootCommand()
	rootCmd.SetOut(os.Stdout)

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) // nolint:gocritic
	}
}

// NewRootCommand returns the oraexpr command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "oraexpr",
		Short:             "oraexpr parses Oracle SQL expressions, predicates and data types.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: Init,
	}
	AddFlags(rootCmd)

	rootCmd.AddCommand(
		NewParseCommand(),
		NewFormatCommand(),
		NewDataTypeCommand(),
		NewBatchCommand(),
	)
	return rootCmd
}
