package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/ledger"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete transactions by id",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	e, err := openEnv(ctx, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	for _, id := range args {
		txn, _ := ledger.Ledger(e.session.Transactions()).Find(id)
		removed, err := e.session.DeleteTransaction(ctx, id)
		if err != nil {
			return fmt.Errorf("deleting %s: %w", id, err)
		}
		if !removed {
			fmt.Printf("  No transaction with id %s\n", id)
			continue
		}
		fmt.Printf("  Deleted %s  %s\n", id, txn.Description)
	}
	return nil
}
