package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "列出文件分组",
	Long:  `列出所有文件分组及各自的记录数。文件分组是 CSV 导出的单位。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFiles()
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles() error {
	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	groups := rm.FileGroups()
	if len(groups) == 0 {
		color.Yellow("暂无记录，使用 'scanform collect <模板>' 开始采集")
		return nil
	}

	color.Cyan("=== 文件分组 (%d) ===", len(groups))
	for _, g := range groups {
		fmt.Printf("  %-32s %d 条记录\n", g.Name, g.RecordCount)
	}

	return nil
}
