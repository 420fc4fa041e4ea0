package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
	"github.com/YuChen-Hu/scanform-cli/internal/utils"
)

var (
	templateExportOutput string
	templateExportName   string
)

var templateExportCmd = &cobra.Command{
	Use:   "export",
	Short: "导出模板到文件",
	Long: `把模板导出为 JSON 包，用于备份或在设备间共享。

示例:
  scanform template export                          # 导出全部模板
  scanform template export --output bundle.json     # 导出到指定文件
  scanform template export --template 入库单         # 只导出指定模板`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplateExport()
	},
}

func init() {
	templateCmd.AddCommand(templateExportCmd)
	templateExportCmd.Flags().StringVarP(&templateExportOutput, "output", "o", "", "输出文件路径")
	templateExportCmd.Flags().StringVar(&templateExportName, "template", "", "只导出指定名称的模板")
}

func runTemplateExport() error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	templates := tm.List()
	if templateExportName != "" {
		t, err := tm.GetByName(templateExportName)
		if err != nil {
			return fmt.Errorf("%s: %s", i18n.T("template_not_found"), templateExportName)
		}
		templates = []store.Template{*t}
	}

	if len(templates) == 0 {
		return fmt.Errorf("没有可导出的模板")
	}

	data, err := store.MarshalBundle(templates)
	if err != nil {
		return err
	}

	output := templateExportOutput
	if output == "" {
		output = fmt.Sprintf("scanform-templates-%s.json", time.Now().Format("20060102-150405"))
	}

	if err := utils.AtomicWriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("写入导出文件失败: %w", err)
	}

	color.Green("✓ %s: %s", i18n.T("template_exported"), output)
	fmt.Printf("  模板数: %d\n", len(templates))
	fmt.Printf("  文件大小: %.2f KB\n", float64(len(data))/1024)

	return nil
}
