package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/parcc/bench"
	"github.com/katalvlaran/parcc/cc"
	"github.com/katalvlaran/parcc/cscmat"
)

const (
	flagThreads   = "threads"
	flagTrials    = "trials"
	flagAlgorithm = "algorithm"

	envPrefix = "PARCC"
)

var rootCmd = &cobra.Command{
	Use:   "parcc [flags] <matrix-file>",
	Short: "Count connected components of a sparse graph",
	Long: `parcc loads a sparse binary matrix (.mtx or .csb), interprets it as an
undirected graph, counts its connected components, and prints a JSON
report with timing and allocation statistics.

Example:
  parcc -a uf -t 8 -n 5 web-graph.mtx
  PARCC_THREADS=16 parcc road-network.csb`,
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, printing any error to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parcc:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntP(flagThreads, "t", 8, "worker count (1 = sequential baseline)")
	rootCmd.Flags().IntP(flagTrials, "n", 1, "number of benchmark trials")
	rootCmd.Flags().StringP(flagAlgorithm, "a", "uf", "algorithm family: uf | lp")

	// Every flag is overridable through PARCC_* environment variables.
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	bindFlags(rootCmd.Flags())
}

// bindFlags registers every flag of the set with viper under its own name.
func bindFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}

func run(cmd *cobra.Command, args []string) error {
	algo, err := cc.ParseAlgorithm(viper.GetString(flagAlgorithm))
	if err != nil {
		return err
	}

	m, err := cscmat.Load(args[0])
	if err != nil {
		return err
	}

	runner := bench.Runner{
		Trials:    viper.GetInt(flagTrials),
		Workers:   viper.GetInt(flagThreads),
		Algorithm: algo,
	}
	report, err := runner.Run(m)
	if err != nil {
		return err
	}
	return report.WriteJSON(cmd.OutOrStdout())
}
