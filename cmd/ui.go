package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "启动交互界面",
	Long:  `启动终端交互界面，浏览文件分组和记录，查看与删除采集数据。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI() error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	p := tea.NewProgram(tui.New(tm, rm), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("运行界面失败: %w", err)
	}

	return nil
}
