package cmd

import (
	"fmt"

	"pokemasdb/core/aggregate"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var prettyFlag bool

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <trainer|pokemon|move|skill> <name>",
	Short: "Build the caches and print one entry as JSON",
	Long: `Fetches every trainer record from the configured source, builds the caches
and prints the entry stored under name. Names match loosely, so "mr mime"
finds "Mr. Mime".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := aggregate.ParseKind(args[0])
		if err != nil {
			return err
		}

		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.logg.Sync()

		reg, err := e.newRegistry(cmd.Context())
		if err != nil {
			return err
		}
		if err := reg.Initialize(cmd.Context()); err != nil {
			return fmt.Errorf("failed to build caches: %w", err)
		}
		caches, err := reg.Caches()
		if err != nil {
			return err
		}

		v, ok := caches.Lookup(kind, args[1])
		if !ok {
			return fmt.Errorf("%s %q not found", kind, args[1])
		}
		data, err := marshalOutput(v, prettyFlag)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", kind, err)
		}

		e.logg.Debug("Lookup finished", zap.String("kind", string(kind)), zap.String("name", args[1]))
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func marshalOutput(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func init() {
	lookupCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent the JSON output")
	RootCmd.AddCommand(lookupCmd)
}
