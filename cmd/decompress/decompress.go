package decompress

import (
	"fmt"
	"os"
	"topzip/pkg"
	"topzip/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	output string
	force  bool
)

var DecompressCmd = &cobra.Command{
	Use:   "decompress [file.top]",
	Short: "Restore the original file from a .top file",
	Long:  "Decompress a " + pkg.Suffix + " file. The output defaults to the input name without the " + pkg.Suffix + " suffix.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")

		out, err := pkg.DecompressFile(src, pkg.FileOptions{
			Output: output,
			Force:  force,
			Log:    logger.New(verbose, quiet),
		})
		if err != nil {
			fmt.Printf("Error decompressing %s: %s\n", src, err)
			os.Exit(1)
		}
		if !quiet {
			fmt.Printf("Successfully decompressed %s into %s\n", src, out)
		}
	},
}

func init() {
	DecompressCmd.Flags().StringVarP(&output, "output", "O", "", "Output file (default: input name without "+pkg.Suffix+")")
	DecompressCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file if it exists")
}
