package cmd

import (
	"fmt"

	"pokemasdb/core/source"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mirrorFrom string

// mirrorCmd represents the mirror command
var mirrorCmd = &cobra.Command{
	Use:   "mirror <storage|database>",
	Short: "Copy every trainer record into storage or the database",
	Long: `Fetches every trainer record from --from (the origin site by default) and
writes it to the given destination, replacing what was there. A mirrored
destination can then be used as the source driver.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{source.DriverStorage, source.DriverDatabase},
	RunE: func(cmd *cobra.Command, args []string) error {
		to := args[0]
		if to == mirrorFrom {
			return fmt.Errorf("cannot mirror %s into itself", to)
		}

		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.logg.Sync()

		src, err := e.openSource(cmd.Context(), mirrorFrom)
		if err != nil {
			return err
		}
		sink, err := e.openSink(cmd.Context(), to)
		if err != nil {
			return err
		}

		e.logg.Info("Mirroring trainer records", zap.String("from", src.Name()), zap.String("to", to))
		res, err := source.Mirror(cmd.Context(), src, sink, e.cfg.Source.Concurrency, e.logg)
		if err != nil {
			return fmt.Errorf("mirror failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Mirrored %d trainers (%s) from %s to %s in %s\n",
			len(res.Records), humanize.Bytes(uint64(res.Bytes)), src.Name(), to, res.Took)
		return nil
	},
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorFrom, "from", source.DriverHTTP, "Source driver to read from (http, storage, database)")
	RootCmd.AddCommand(mirrorCmd)
}
