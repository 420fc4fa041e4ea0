package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "scanform [模板名称]",
	Short: "条码/表单数据采集工具",
	Long: `scanform 是一个基于模板的数据采集命令行工具：
定义字段模板，扫码或手动录入数据，再导出为分隔文本文件。

使用方法：
  scanform                  列出所有模板
  scanform <模板名称>        开始按模板采集数据
  scanform template add     创建新模板
  scanform export <分组>     导出分组记录为 CSV`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 无参数：列出所有模板
		if len(args) == 0 {
			return listOverview()
		}

		// 单参数：直接进入该模板的采集流程
		return runCollect(args[0], "")
	},
}

// Execute 运行根命令
func Execute() {
	i18n.Init()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "dir", "", "自定义数据目录")

	// 自定义帮助模板
	rootCmd.SetHelpTemplate(`{{.Long}}

{{if .HasAvailableSubCommands}}可用命令:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}

{{if .HasAvailableLocalFlags}}选项:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

使用 "{{.CommandPath}} [command] --help" 获取更多关于命令的信息。
`)
}

// listOverview 列出所有模板及其记录数
func listOverview() error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}
	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	templates := tm.List()
	if len(templates) == 0 {
		fmt.Println("暂无模板，使用 'scanform template add' 创建模板")
		return nil
	}

	fmt.Println("模板列表:")
	fmt.Println("─────────")

	for _, t := range templates {
		recordCount := len(rm.ListByTemplate(t.ID))
		fmt.Printf("● %-24s 字段: %d  记录: %d", t.Name, len(t.Fields), recordCount)
		if store.HasDuplicatePositions(t.CSVSettings) {
			fmt.Printf("  ⚠ 列位置重复")
		}
		fmt.Println()
	}

	return nil
}
