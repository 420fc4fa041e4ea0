package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var (
	templateEditFile   string
	templateEditRename string
	templateEditDesc   string
	templateEditYes    bool
)

var templateEditCmd = &cobra.Command{
	Use:   "edit <模板名称>",
	Short: "编辑模板（整体替换）",
	Long: `编辑现有模板。编辑是整体替换：新的定义完全覆盖旧模板，
只保留原有的 ID 和创建时间。保存前会显示变更 diff 并要求确认。

示例:
  scanform template edit 入库单 --file inventory.yaml   # 用定义文件替换
  scanform template edit 入库单 --rename 出库单          # 仅改名
  scanform template edit 入库单 --desc "新的描述"        # 仅改描述`,
	Args: cobra.ExactArgs(1),
}

func init() {
	templateEditCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTemplateEdit(args[0])
	}
	templateCmd.AddCommand(templateEditCmd)
	templateEditCmd.Flags().StringVar(&templateEditFile, "file", "", "YAML/TOML 模板定义文件")
	templateEditCmd.Flags().StringVar(&templateEditRename, "rename", "", "修改模板名称")
	templateEditCmd.Flags().StringVar(&templateEditDesc, "desc", "", "修改模板描述")
	templateEditCmd.Flags().BoolVarP(&templateEditYes, "yes", "y", false, "跳过确认")
}

func runTemplateEdit(name string) error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	current, err := tm.GetByName(name)
	if err != nil {
		return fmt.Errorf("%s: %s", i18n.T("template_not_found"), name)
	}

	var updated *store.Template

	if templateEditFile != "" {
		updated, err = store.LoadTemplateDefinition(templateEditFile)
		if err != nil {
			return err
		}
	} else {
		if templateEditRename == "" && !templateEditCmdDescChanged() {
			return fmt.Errorf("请通过 --file、--rename 或 --desc 指定修改内容")
		}
		clone := *current
		updated = &clone
	}

	// 编辑 = 覆盖，但 ID 和创建时间保持不变
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	if templateEditRename != "" {
		updated.Name = templateEditRename
	}
	if templateEditCmdDescChanged() {
		updated.Description = templateEditDesc
	}

	diff, err := store.TemplateDiff(current, updated)
	if err != nil {
		return err
	}
	fmt.Print(store.FormatDiffForCLI(diff))

	if !templateEditYes && !confirm("确认保存以上修改?") {
		fmt.Println("已取消")
		return nil
	}

	err = withDataLock(func() error {
		return tm.Update(*updated)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("validation_failed"), err)
	}

	color.Green("✓ %s: %s", i18n.T("template_updated"), updated.Name)
	return nil
}

func templateEditCmdDescChanged() bool {
	return templateEditCmd.Flags().Changed("desc")
}
