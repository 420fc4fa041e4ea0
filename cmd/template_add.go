package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var (
	templateAddFile   string
	templateAddDesc   string
	templateAddFields []string
)

var templateAddCmd = &cobra.Command{
	Use:   "add [模板名称]",
	Short: "创建新模板",
	Long: `创建新的数据采集模板。

字段可以通过 --field 参数、YAML/TOML 定义文件或交互式输入提供。
--field 格式: 名称:类型[:required][:选项1|选项2|...]
类型: free_text, number, date, fixed_data, fixed_date, barcode

示例:
  scanform template add 入库单 --field "商品:barcode:required" --field "数量:number"
  scanform template add --file inventory.yaml
  scanform template add 巡检表                # 交互式创建`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return runTemplateAdd(name)
	},
}

func init() {
	templateCmd.AddCommand(templateAddCmd)
	templateAddCmd.Flags().StringVar(&templateAddFile, "file", "", "YAML/TOML 模板定义文件")
	templateAddCmd.Flags().StringVar(&templateAddDesc, "desc", "", "模板描述")
	templateAddCmd.Flags().StringArrayVar(&templateAddFields, "field", nil, "字段定义（可重复）")
}

func runTemplateAdd(name string) error {
	tm, err := getTemplateManager()
	if err != nil {
		return fmt.Errorf("初始化模板管理器失败: %w", err)
	}

	var t *store.Template

	switch {
	case templateAddFile != "":
		t, err = store.LoadTemplateDefinition(templateAddFile)
		if err != nil {
			return err
		}
		if name != "" {
			t.Name = name
		}
	case len(templateAddFields) > 0:
		if name == "" {
			return fmt.Errorf("%s", i18n.T("error.name_required"))
		}
		t, err = buildTemplateFromFlags(name, templateAddDesc, templateAddFields)
		if err != nil {
			return err
		}
	default:
		t, err = buildTemplateInteractive(name)
		if err != nil {
			return err
		}
	}

	var saved *store.Template
	err = withDataLock(func() error {
		saved, err = tm.Add(*t)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("validation_failed"), err)
	}

	color.Green("✓ %s: %s", i18n.T("template_added"), saved.Name)
	fmt.Printf("  ID: %s\n", saved.ID)
	fmt.Printf("  字段数: %d\n", len(saved.Fields))

	return nil
}

// buildTemplateFromFlags 从 --field 参数构造模板
func buildTemplateFromFlags(name, desc string, fieldSpecs []string) (*store.Template, error) {
	t := &store.Template{
		Name:        name,
		Description: desc,
		CSVSettings: store.CSVExportSettings{
			IncludeHeader: true,
			Delimiter:     store.DelimiterComma,
			FileExtension: "csv",
		},
	}

	for _, spec := range fieldSpecs {
		field, err := parseFieldSpec(spec)
		if err != nil {
			return nil, err
		}
		t.Fields = append(t.Fields, *field)
	}

	return t, nil
}

// parseFieldSpec 解析 "名称:类型[:required][:选项1|选项2]" 格式的字段定义
func parseFieldSpec(spec string) (*store.TemplateField, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 {
		return nil, fmt.Errorf("字段定义格式错误: %s (应为 名称:类型[:required][:选项...])", spec)
	}

	field := &store.TemplateField{
		ID:   uuid.New().String(),
		Name: strings.TrimSpace(parts[0]),
		Type: store.FieldType(strings.TrimSpace(parts[1])),
	}

	for _, extra := range parts[2:] {
		extra = strings.TrimSpace(extra)
		switch {
		case extra == "required":
			field.Required = true
		case strings.Contains(extra, "|"):
			field.Options = strings.Split(extra, "|")
		case extra != "":
			field.DefaultValue = extra
		}
	}

	return field, nil
}

// buildTemplateInteractive 交互式创建模板
func buildTemplateInteractive(name string) (*store.Template, error) {
	var err error
	if name == "" {
		name, err = promptInput("模板名称: ")
		if err != nil {
			return nil, fmt.Errorf("读取模板名称失败: %w", err)
		}
	}

	desc := templateAddDesc
	if desc == "" {
		desc, _ = promptInput("模板描述 (可选): ")
	}

	t := &store.Template{
		Name:        name,
		Description: desc,
		CSVSettings: store.CSVExportSettings{
			IncludeHeader: true,
			Delimiter:     store.DelimiterComma,
			FileExtension: "csv",
		},
	}

	fmt.Println("逐个输入字段，字段名留空结束:")
	for {
		fieldName, err := promptInput(fmt.Sprintf("字段 %d 名称: ", len(t.Fields)+1))
		if err != nil || fieldName == "" {
			break
		}

		fieldType, _ := promptInput("  类型 [free_text/number/date/fixed_data/fixed_date/barcode] (默认 free_text): ")
		if fieldType == "" {
			fieldType = string(store.FieldFreeText)
		}

		field := store.TemplateField{
			ID:   uuid.New().String(),
			Name: fieldName,
			Type: store.FieldType(fieldType),
		}

		if required, _ := promptInput("  必填? [y/N]: "); strings.EqualFold(required, "y") {
			field.Required = true
		}

		if field.Type == store.FieldFixedData {
			options, _ := promptInput("  选项 (用 | 分隔): ")
			if options != "" {
				field.Options = strings.Split(options, "|")
			}
		}

		if field.Type == store.FieldFixedDate || field.Type == store.FieldFreeText {
			field.DefaultValue, _ = promptInput("  默认值 (可选): ")
		}

		if field.Type == store.FieldDate || field.Type == store.FieldFixedDate {
			field.DateFormat, _ = promptInput("  导出日期格式 (如 dd/MM/yyyy，留空保持 YYYY-MM-DD): ")
			if field.DateFormat == "custom" {
				field.CustomDateFormat, _ = promptInput("  自定义格式模板 (yyyy/MM/dd 占位): ")
			}
		}

		t.Fields = append(t.Fields, field)

		position, _ := promptInput("  导出列位置 (数字，留空为未定位): ")
		if position != "" {
			if pos, err := strconv.Atoi(position); err == nil && pos > 0 {
				if t.CSVSettings.FieldPositions == nil {
					t.CSVSettings.FieldPositions = make(map[string]int)
				}
				t.CSVSettings.FieldPositions[field.ID] = pos
			}
		}
	}

	return t, nil
}
