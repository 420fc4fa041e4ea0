package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/export"
	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var templateShowCmd = &cobra.Command{
	Use:   "show <模板名称>",
	Short: "查看模板详情",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplateShow(args[0])
	},
}

func init() {
	templateCmd.AddCommand(templateShowCmd)
}

func runTemplateShow(name string) error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	t, err := tm.GetByName(name)
	if err != nil {
		return fmt.Errorf("%s: %s", i18n.T("template_not_found"), name)
	}

	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	color.Cyan("=== %s ===", t.Name)
	fmt.Printf("ID: %s\n", t.ID)
	if t.Description != "" {
		fmt.Printf("描述: %s\n", t.Description)
	}
	fmt.Printf("记录数: %d\n", len(rm.ListByTemplate(t.ID)))

	fmt.Println("\n字段:")
	dups := store.DuplicatePositions(t.CSVSettings)
	dupSet := make(map[int]bool)
	for _, d := range dups {
		dupSet[d] = true
	}

	for i, f := range t.Fields {
		required := ""
		if f.Required {
			required = color.RedString(" *")
		}
		fmt.Printf("  %d. %s%s (%s)", i+1, f.Name, required, f.Type)

		if pos, ok := t.CSVSettings.FieldPositions[f.ID]; ok && pos > 0 {
			if dupSet[pos] {
				fmt.Printf("  %s", color.YellowString("列位置: %d ⚠重复", pos))
			} else {
				fmt.Printf("  列位置: %d", pos)
			}
		}
		if f.DefaultValue != "" {
			fmt.Printf("  默认: %s", f.DefaultValue)
		}
		if len(f.Options) > 0 {
			fmt.Printf("  选项: %v", f.Options)
		}
		if f.DateFormat != "" {
			fmt.Printf("  日期格式: %s", f.DateFormat)
		}
		fmt.Println()
	}

	fmt.Println("\n导出配置:")
	fmt.Printf("  表头: %v\n", t.CSVSettings.IncludeHeader)
	fmt.Printf("  分隔符: %s (%q)\n", t.CSVSettings.Delimiter, export.ResolveDelimiter(t.CSVSettings))
	fmt.Printf("  扩展名: %s\n", export.FileExtension(t.CSVSettings))

	if len(dups) > 0 {
		color.Yellow("\n⚠ %s: %v", i18n.T("error.duplicate_positions"), dups)
	}

	return nil
}
