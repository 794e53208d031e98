// Command ballotctl is the operator tool for an election: it applies
// migrations, prints the catalog and results, and clears the ballot box.
//
// It uses the same configuration as the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "ballotctl",
		Short:         "Operate a campus election",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		migrateCmd(),
		catalogCmd(),
		resultsCmd(),
		statsCmd(),
		resetCmd(),
		promoteCmd(),
		voterCmd(),
		talliesCmd(),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
