package compress

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
	verify bool
)

var CompressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Compress a file into a .top file",
	Long:  "Compress a file with a Huffman code built from its byte frequencies. The output defaults to the input name plus " + pkg.Suffix + ".",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")

		out, err := pkg.CompressFile(src, pkg.FileOptions{
			Output: output,
			Force:  force,
			Verify: verify,
			Log:    logger.New(verbose, quiet),
		})
		if err != nil {
			fmt.Printf("Error compressing %s: %s\n", src, err)
			os.Exit(1)
		}
		if !quiet {
			fmt.Printf("Successfully compressed %s into %s\n", src, out)
		}
	},
}

func init() {
	CompressCmd.Flags().StringVarP(&output, "output", "O", "", "Output file (default: input name + "+pkg.Suffix+")")
	CompressCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file if it exists")
	CompressCmd.Flags().BoolVar(&verify, "verify", false, "Decode the result and compare checksums before writing")
}
