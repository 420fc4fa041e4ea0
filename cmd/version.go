package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scanform v%s\n", version.GetVersion())
		fmt.Printf("  构建日期: %s\n", version.GetBuildDate())
		fmt.Printf("  Git 提交: %s\n", version.GetGitCommit())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
