package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有模板",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplateList()
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
}

func runTemplateList() error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	templates := tm.List()
	if len(templates) == 0 {
		color.Yellow("暂无模板，使用 'scanform template add' 创建模板")
		return nil
	}

	color.Cyan("=== 模板 (%d) ===", len(templates))
	for _, t := range templates {
		fmt.Printf("  名称: %s\n", color.GreenString(t.Name))
		fmt.Printf("  ID: %s\n", t.ID)
		if t.Description != "" {
			fmt.Printf("  描述: %s\n", t.Description)
		}
		fmt.Printf("  字段数: %d\n", len(t.Fields))
		if dups := store.DuplicatePositions(t.CSVSettings); len(dups) > 0 {
			color.Yellow("  ⚠ 重复的列位置: %v", dups)
		}
		fmt.Println()
	}

	return nil
}
