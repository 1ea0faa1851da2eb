package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parse-schema <dump_file> [output_dir]",
	Short: "Split a PostgreSQL schema dump into one file per object",
	Long: `parse-schema decomposes the output of pg_dump --schema-only into one
file per top-level object, plus aggregate views by object name and by
object type, each tagged with an MD5 content checksum. Two successive
dumps of the same database can then be diffed file-by-file instead of
as one monolithic blob.

The output directory must not already exist; every run produces a
complete, freshly derived decomposition.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or output directory)
  3  - Panic or unexpected system error
  10 - Unparsed content left over after tokenization
  11 - Directory, file, or symlink creation failed`,
	Args:         RequireDumpArgs,
	RunE:         runSplit,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().Bool("no-progress", false, "Disable the export progress bar")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
