package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/export"
	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
	"github.com/YuChen-Hu/scanform-cli/internal/utils"
)

var exportOutputDir string

var exportCmd = &cobra.Command{
	Use:   "export <文件分组>",
	Short: "导出文件分组的记录为分隔文本",
	Long: `把一个文件分组下的所有记录按所属模板的导出配置序列化为分隔文本文件。

输出文件名为 <分组名>_export.<扩展名>，扩展名为 csv 时 MIME 类型为
text/csv，否则为 text/plain。

示例:
  scanform export 仓库A                    # 导出到当前目录
  scanform export 仓库A --output /tmp      # 导出到指定目录`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0], exportOutputDir)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", ".", "输出目录")
}

// runExport 导出一个文件分组
// 记录为空或模板无法解析时直接报错返回，不写出任何文件
func runExport(groupName, outputDir string) error {
	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	records := rm.ListByFile(groupName)
	if len(records) == 0 {
		return fmt.Errorf("%s: %s", i18n.T("export_no_data"), groupName)
	}

	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	// 同一分组的记录共享模板，取第一条解析
	t, _ := tm.Get(records[0].TemplateID)
	if t == nil {
		return fmt.Errorf("%s (templateId=%s)", i18n.T("export_no_template"), records[0].TemplateID)
	}

	content, err := export.BuildCSV(t.Fields, t.CSVSettings, records)
	if err != nil {
		if errors.Is(err, export.ErrNoRecords) {
			return fmt.Errorf("%s: %s", i18n.T("export_no_data"), groupName)
		}
		return fmt.Errorf("生成导出内容失败: %w", err)
	}

	fileName := export.ExportFileName(groupName, t.CSVSettings)
	outputPath := filepath.Join(outputDir, fileName)

	if err := utils.AtomicWriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("写入导出文件失败: %w", err)
	}

	ext := export.FileExtension(t.CSVSettings)

	color.Green("✓ %s: %s", i18n.T("export_done"), outputPath)
	fmt.Printf("  模板: %s\n", t.Name)
	fmt.Printf("  记录数: %d\n", len(records))
	fmt.Printf("  MIME 类型: %s\n", export.MIMEType(ext))
	fmt.Printf("  文件大小: %.2f KB\n", float64(len(content))/1024)

	if store.HasDuplicatePositions(t.CSVSettings) {
		color.Yellow("⚠ 模板存在重复的列位置，相同位置的字段按模板内顺序排列")
	}

	return nil
}
