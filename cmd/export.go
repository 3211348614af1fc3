package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/fintrack/internal/store"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored transactions and categories as JSON",
	Long:  "Writes both persisted collections, keyed by their storage keys, for backup or migration to another backend.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "json or yaml")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	e, err := openEnv(ctx, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	doc := make(map[string]json.RawMessage, 2)
	for _, key := range []string{store.KeyTransactions, store.KeyCategories} {
		raw, err := e.adapter.Raw(ctx, key)
		if err != nil {
			return fmt.Errorf("reading %s: %w", key, err)
		}
		doc[key] = raw
	}

	out, err := encodeExport(doc, exportFormat)
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(exportOut, out, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported %d transactions to %s\n", len(e.session.Transactions()), exportOut)
	}
	return nil
}

func encodeExport(doc map[string]json.RawMessage, format string) ([]byte, error) {
	switch format {
	case "json", "":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding export: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml", "yml":
		generic := make(map[string]any, len(doc))
		for key, raw := range doc {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, fmt.Errorf("decoding %s: %w", key, err)
			}
			generic[key] = v
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("encoding export: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("--format %q: want json or yaml", format)
	}
}
