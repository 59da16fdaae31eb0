package cmd

import (
	"fmt"
	"io"

	"pokemasdb/core/aggregate"
	"pokemasdb/core/registry"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// cacheCmd groups cache commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the caches",
}

// cacheStatusCmd represents the cache status command
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Build the caches once and report their sizes",
	Long:  `Fetches every trainer record from the configured source, builds the caches and prints the build report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.logg.Sync()

		reg, err := e.newRegistry(cmd.Context())
		if err != nil {
			return err
		}
		buildErr := reg.Initialize(cmd.Context())
		printStatus(cmd.OutOrStdout(), reg.Status())
		if buildErr != nil {
			return fmt.Errorf("failed to build caches: %w", buildErr)
		}
		return nil
	},
}

func printStatus(w io.Writer, st registry.Status) {
	fmt.Fprintln(w, "\n=== Cache Status ===")
	fmt.Fprintf(w, "State:       %s\n", st.State)
	fmt.Fprintf(w, "Source:      %s\n", st.Source)
	fmt.Fprintf(w, "Generation:  %d\n", st.Generation)
	if st.BuiltAt != nil {
		fmt.Fprintf(w, "Built:       %s\n", humanize.Time(*st.BuiltAt))
	}
	for _, k := range aggregate.Kinds {
		fmt.Fprintf(w, "%-12s %s\n", string(k)+":", humanize.Comma(int64(st.Sizes[k])))
	}
	if run := st.LastRun; run != nil {
		fmt.Fprintln(w, "--------------------")
		fmt.Fprintf(w, "Trainers:    %d\n", run.Trainers)
		fmt.Fprintf(w, "Downloaded:  %s\n", run.Downloaded)
		fmt.Fprintf(w, "Took:        %dms\n", run.TookMillis)
		if run.Error != "" {
			fmt.Fprintf(w, "Error:       %s\n", run.Error)
		}
	}
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	RootCmd.AddCommand(cacheCmd)
}
