package main

import (
	"os"
	compress "topzip/cmd/compress"
	decompress "topzip/cmd/decompress"
	inspect "topzip/cmd/inspect"
	version "topzip/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "topzip",
	Short: "topzip file compressor",
	Long:  "topzip compresses files losslessly with a static Huffman code stored alongside the data.",
}

func main() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")

	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
