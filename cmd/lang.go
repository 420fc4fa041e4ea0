package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/settings"
)

var langCmd = &cobra.Command{
	Use:   "lang [en|zh]",
	Short: "查看或切换界面语言",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runLangShow()
		}
		return runLangSet(args[0])
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLangShow() error {
	sm, err := settings.NewManager()
	if err != nil {
		return fmt.Errorf("加载设置失败: %w", err)
	}

	lang := sm.GetLanguage()
	name := "中文"
	if lang == "en" {
		name = "English"
	}
	fmt.Printf("当前语言: %s (%s)\n", lang, name)
	return nil
}

func runLangSet(lang string) error {
	sm, err := settings.NewManager()
	if err != nil {
		return fmt.Errorf("加载设置失败: %w", err)
	}

	if err := sm.SetLanguage(lang); err != nil {
		return err
	}

	color.Green("✓ 语言已切换为: %s", lang)
	return nil
}
