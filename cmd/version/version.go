package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View topzip's version",
	Long:  "Display the version of topzip and of its compressed file format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var version string = "topzip version 0.2.0"
		var format string = "format: 1-byte symbol count, 1-byte padding, 3-byte frequency entries, MSB-first payload"
		fmt.Println(version)
		fmt.Println(format)

		return nil
	},
}
