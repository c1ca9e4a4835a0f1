package inspect

import (
	"fmt"
	"os"
	"topzip/pkg"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [file.top]",
	Short: "View the header of a .top file",
	Long:  "Inspect the header of a " + pkg.Suffix + " file: symbol count, padding, frequency table and the codes derived from it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		table, _ := cmd.Flags().GetBool("table")

		info, err := pkg.InspectFile(path)
		if err != nil {
			fmt.Printf("Error inspecting %s: %s\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("File %s:\n", info.Path)
		fmt.Printf("\tSymbols: %d\n\tPadding bits: %d\n\tOriginal size: %d\n\tHeader size: %d\n\tPayload size: %d (%d bits)\n\tRatio: %.3f\n\tXXH64: %016x\n",
			len(info.Header.Table), info.Header.Rem, info.Total, info.HeaderSize,
			info.PayloadSize, info.PayloadBits, info.Ratio(), info.Digest)

		if table {
			fmt.Println("=====================")
			for i, e := range info.Header.Table {
				fmt.Printf("%d:\tsymbol 0x%02x %q\tcount %d\tcode %s\n",
					i, e.Symbol, rune(e.Symbol), e.Count, info.Codes[e.Symbol])
			}
		}
	},
}

func init() {
	InspectCmd.Flags().BoolP("table", "T", false, "Print the frequency table and code of every symbol")
}
