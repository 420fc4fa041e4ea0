package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
)

var templateDeleteYes bool

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <模板名称>",
	Short: "删除模板",
	Long: `删除指定模板。已采集的记录不会被级联删除：
它们保留字段快照，仍可查看，但无法继续按该模板录入。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplateDelete(args[0])
	},
}

func init() {
	templateCmd.AddCommand(templateDeleteCmd)
	templateDeleteCmd.Flags().BoolVarP(&templateDeleteYes, "yes", "y", false, "跳过确认")
}

func runTemplateDelete(name string) error {
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

	recordCount := len(rm.ListByTemplate(t.ID))
	if recordCount > 0 {
		color.Yellow("⚠ 该模板有 %d 条记录，删除后它们将按字段快照降级展示", recordCount)
	}

	if !templateDeleteYes && !confirm(i18n.Tf("confirm.delete_template_message", t.Name)) {
		fmt.Println("已取消")
		return nil
	}

	err = withDataLock(func() error {
		return tm.Delete(t.ID)
	})
	if err != nil {
		return fmt.Errorf("删除模板失败: %w", err)
	}

	color.Green("✓ %s: %s", i18n.T("template_deleted"), t.Name)
	return nil
}
