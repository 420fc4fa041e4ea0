package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
	"github.com/YuChen-Hu/scanform-cli/internal/tui"
)

var collectFileGroup string

var collectCmd = &cobra.Command{
	Use:   "collect <模板名称>",
	Short: "按模板采集数据",
	Long: `按指定模板采集数据记录。

在交互式终端中打开录入表单；stdin 为管道时进入扫描模式：
逐行读取字段值（条码扫描枪以键盘输入方式逐行送入即可），
每填满一组字段保存为一条记录，直到输入结束。

示例:
  scanform collect 入库单                       # 打开录入表单
  scanform collect 入库单 --file 仓库A          # 记录归入指定分组
  cat scans.txt | scanform collect 入库单       # 批量扫描模式`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(args[0], collectFileGroup)
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)
	collectCmd.Flags().StringVar(&collectFileGroup, "file", "", "文件分组名（默认取设置中的分组名）")
}

// runCollect 进入指定模板的采集流程
func runCollect(templateName, fileGroup string) error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	t, err := tm.GetByName(templateName)
	if err != nil {
		return fmt.Errorf("%s: %s", i18n.T("template_not_found"), templateName)
	}

	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	if fileGroup == "" {
		fileGroup = defaultFileGroup()
	}

	return withDataLock(func() error {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			model := tui.NewEntry(tm, rm, t, fileGroup)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("运行录入表单失败: %w", err)
			}
			return nil
		}

		return collectFromReader(rm, t, fileGroup, os.Stdin)
	})
}

// collectFromReader 扫描模式：逐行读取字段值
// 值按字段列表顺序填入；fixed_date 字段不消耗输入行，直接取模板预设值
func collectFromReader(rm *store.RecordManager, t *store.Template, fileGroup string, r io.Reader) error {
	scannable := 0
	for _, f := range t.Fields {
		if f.Type != store.FieldFixedDate {
			scannable++
		}
	}
	if scannable == 0 {
		return fmt.Errorf("模板 '%s' 没有可录入的字段，无法使用扫描模式", t.Name)
	}

	scanner := bufio.NewScanner(r)
	saved := 0

	for {
		data := make(map[string]string)
		consumed := 0

		for _, f := range t.Fields {
			if f.Type == store.FieldFixedDate {
				if f.DefaultValue != "" {
					data[f.ID] = f.DefaultValue
				}
				continue
			}

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("读取输入失败: %w", err)
				}
				if consumed > 0 {
					return fmt.Errorf("输入在记录中途结束：字段 '%s' 没有值（已保存 %d 条）", f.Name, saved)
				}
				// 输入正常结束
				fmt.Printf("✓ 扫描采集完成: %d 条记录已保存到 '%s'\n", saved, fileGroup)
				return nil
			}

			value := scanner.Text()
			consumed++

			if value == "" && f.DefaultValue != "" {
				value = f.DefaultValue
			}

			if err := store.ValidateFieldValue(f, value); err != nil {
				return fmt.Errorf("第 %d 条记录校验失败: %w", saved+1, err)
			}

			if value != "" {
				data[f.ID] = value
			}
		}

		if _, err := rm.Add(t, data, fileGroup); err != nil {
			return fmt.Errorf("保存记录失败: %w", err)
		}
		saved++
	}
}
