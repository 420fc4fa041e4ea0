package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var (
	recordsFileFilter     string
	recordsTemplateFilter string
	recordsDeleteYes      bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "查看和管理采集的记录",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsList()
	},
}

var recordsShowCmd = &cobra.Command{
	Use:   "show <记录 ID>",
	Short: "查看单条记录详情",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsShow(args[0])
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <记录 ID>",
	Short: "删除一条记录",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsDelete(args[0])
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.AddCommand(recordsShowCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)

	recordsCmd.Flags().StringVar(&recordsFileFilter, "file", "", "按文件分组过滤")
	recordsCmd.Flags().StringVar(&recordsTemplateFilter, "template", "", "按模板名称过滤")
	recordsDeleteCmd.Flags().BoolVarP(&recordsDeleteYes, "yes", "y", false, "跳过确认")
}

func runRecordsList() error {
	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	records := rm.List()

	if recordsFileFilter != "" {
		records = rm.ListByFile(recordsFileFilter)
	}

	if recordsTemplateFilter != "" {
		tm, err := getTemplateManager()
		if err != nil {
			return fmt.Errorf("初始化模板管理器失败: %w", err)
		}
		t, err := tm.GetByName(recordsTemplateFilter)
		if err != nil {
			return fmt.Errorf("%s: %s", i18n.T("template_not_found"), recordsTemplateFilter)
		}
		var filtered []store.DataRecord
		for _, r := range records {
			if r.TemplateID == t.ID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		color.Yellow("没有符合条件的记录")
		return nil
	}

	color.Cyan("=== 记录 (%d) ===", len(records))
	for _, r := range records {
		fmt.Printf("  %s  %-20s %-16s %s\n",
			r.ID[:8], r.TemplateName, r.FileName(), formatMillis(r.Timestamp))
	}

	return nil
}

func runRecordsShow(id string) error {
	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	record, err := findRecord(rm, id)
	if err != nil {
		return err
	}

	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	t, _ := tm.Get(record.TemplateID)
	ref := store.ResolveTemplateRef(t, *record)

	color.Cyan("=== 记录 %s ===", record.ID)
	fmt.Printf("模板: %s\n", ref.DisplayName())
	fmt.Printf("分组: %s\n", record.FileName())
	fmt.Printf("时间: %s\n", formatMillis(record.Timestamp))

	switch ref.Kind {
	case store.RefUnknown:
		color.Yellow("⚠ %s", i18n.T("error.template_missing"))
		// 没有字段信息时按原始键值对输出
		for key, value := range record.Data {
			fmt.Printf("  %s: %s\n", key, value)
		}
	case store.RefSnapshot:
		color.Yellow("⚠ 模板已删除，按保存时的字段快照展示")
		fallthrough
	default:
		fmt.Println()
		for _, f := range ref.Fields() {
			value := record.Data[f.ID]
			if value == "" {
				value = "-"
			}
			fmt.Printf("  %s: %s\n", f.Name, value)
		}
	}

	return nil
}

func runRecordsDelete(id string) error {
	rm, err := getRecordManager()
	if err != nil {
		return fmt.Errorf("初始化记录管理器失败: %w", err)
	}

	record, err := findRecord(rm, id)
	if err != nil {
		return err
	}

	if !recordsDeleteYes && !confirm(i18n.Tf("confirm.delete_record_message", record.ID[:8])) {
		fmt.Println("已取消")
		return nil
	}

	err = withDataLock(func() error {
		return rm.Delete(record.ID)
	})
	if err != nil {
		return fmt.Errorf("删除记录失败: %w", err)
	}

	color.Green("✓ %s", i18n.T("record_deleted"))
	return nil
}

// findRecord 按完整 ID 或 ID 前缀查找记录
func findRecord(rm *store.RecordManager, id string) (*store.DataRecord, error) {
	if record, err := rm.Get(id); err == nil {
		return record, nil
	}

	var match *store.DataRecord
	for _, r := range rm.List() {
		if len(id) >= 4 && len(r.ID) >= len(id) && r.ID[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("记录 ID 前缀不唯一: %s", id)
			}
			found := r
			match = &found
		}
	}

	if match == nil {
		return nil, fmt.Errorf("%s: %s", i18n.T("record_not_found"), id)
	}
	return match, nil
}
