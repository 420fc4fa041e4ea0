package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
)

// ValidateTemplate 校验模板是否可以保存
// 校验失败会阻止保存（创建和编辑都会走这里），不产生部分保存
func ValidateTemplate(t *Template) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%s", i18n.T("error.name_required"))
	}

	if len(t.Fields) == 0 {
		return fmt.Errorf("%s", i18n.T("error.fields_required"))
	}

	for _, f := range t.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%s", i18n.T("error.field_name_required"))
		}
		if f.Type == FieldFixedData && len(f.Options) == 0 {
			return fmt.Errorf("%s: %s", i18n.T("error.options_required"), f.Name)
		}
	}

	if dups := DuplicatePositions(t.CSVSettings); len(dups) > 0 {
		return fmt.Errorf("%s: %v", i18n.T("error.duplicate_positions"), dups)
	}

	return nil
}

// DuplicatePositions 返回在大于 0 的位置中出现多于一次的位置值（升序）
// 位置 0 和缺失表示"未定位"，不参与查重
func DuplicatePositions(s CSVExportSettings) []int {
	counts := make(map[int]int)
	for _, pos := range s.FieldPositions {
		if pos > 0 {
			counts[pos]++
		}
	}

	var dups []int
	for pos, n := range counts {
		if n > 1 {
			dups = append(dups, pos)
		}
	}
	sort.Ints(dups)
	return dups
}

// HasDuplicatePositions 判断导出配置中是否存在重复的列位置
func HasDuplicatePositions(s CSVExportSettings) bool {
	return len(DuplicatePositions(s)) > 0
}

// ValidateFieldValue 校验录入时的单个字段值
// 仅在数据录入时执行，导出时不再校验
func ValidateFieldValue(field TemplateField, value string) error {
	if field.Required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %s", i18n.T("error.required_field"), field.Name)
	}

	if value == "" {
		return nil
	}

	switch field.Type {
	case FieldNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%s: %s", i18n.T("error.invalid_number"), field.Name)
		}
	case FieldDate, FieldFixedDate:
		if !isCanonicalDate(value) {
			return fmt.Errorf("%s: %s", i18n.T("error.invalid_date"), field.Name)
		}
	}

	return nil
}

// isCanonicalDate 判断值是否为 YYYY-MM-DD 形式的存储格式
func isCanonicalDate(value string) bool {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return false
	}
	if len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return false
		}
	}
	return true
}

// NormalizeFileExtension 规范化导出文件扩展名：小写字母数字，默认 csv
func NormalizeFileExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return "csv"
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "csv"
		}
	}
	return ext
}
