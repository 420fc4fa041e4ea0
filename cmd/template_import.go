package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/utils"
)

var templateImportCmd = &cobra.Command{
	Use:   "import <文件路径>",
	Short: "从导出包导入模板",
	Long: `从 JSON 导出包导入模板。

导入是整体操作：只要有任何一个模板的名称与现有模板冲突
（忽略大小写），整个导入都会被拒绝，不做部分应用。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplateImport(args[0])
	},
}

func init() {
	templateCmd.AddCommand(templateImportCmd)
}

func runTemplateImport(path string) error {
	if !utils.FileExists(path) {
		return fmt.Errorf("%s: %s", i18n.T("file_not_found"), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取导入文件失败: %w", err)
	}

	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	var count int
	err = withDataLock(func() error {
		count, err = tm.ImportBundle(data)
		return err
	})
	if err != nil {
		return err
	}

	color.Green("✓ %s: %d 个模板已导入", i18n.T("template_imported"), count)
	return nil
}
