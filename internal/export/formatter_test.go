package export

import (
	"testing"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		format   string
		custom   string
		expected string
	}{
		{"日斜杠格式", "2024-01-15", DateFormatDMYSlash, "", "15/01/2024"},
		{"月斜杠格式", "2024-01-15", DateFormatMDYSlash, "", "01/15/2024"},
		{"紧凑格式", "2024-01-15", DateFormatCompact, "", "20240115"},
		{"日横杠格式", "2024-01-15", DateFormatDMYDash, "", "15-01-2024"},
		{"点分格式", "2024-01-15", DateFormatYMDDot, "", "2024.01.15"},
		{"月日补零", "2024-3-5", DateFormatDMYSlash, "", "05/03/2024"},
		{"年份不补零", "99-3-5", DateFormatCompact, "", "990305"},
		{"自定义格式", "2024-01-15", DateFormatCustom, "yyyy/MM/dd", "2024/01/15"},
		{"自定义字面量保留", "2024-01-15", DateFormatCustom, "dd.MM.yyyy 日期", "15.01.2024 日期"},
		{"自定义格式为空原样返回", "2024-01-15", DateFormatCustom, "", "2024-01-15"},
		{"未知格式原样返回", "2024-01-15", "ISO8601", "", "2024-01-15"},
		{"空格式原样返回", "2024-01-15", "", "", "2024-01-15"},
		{"非日期值原样返回", "not-a-date", DateFormatDMYSlash, "", "not-a-date"},
		{"两段值原样返回", "2024-01", DateFormatDMYSlash, "", "2024-01"},
		{"四段值原样返回", "2024-01-15-00", DateFormatDMYSlash, "", "2024-01-15-00"},
		{"空值原样返回", "", DateFormatDMYSlash, "", ""},
		{"非数字段原样返回", "2024-ab-15", DateFormatCompact, "", "2024-ab-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDate(tt.value, tt.format, tt.custom)
			if got != tt.expected {
				t.Errorf("formatDate(%q, %q, %q) = %q, 期望 %q",
					tt.value, tt.format, tt.custom, got, tt.expected)
			}
		})
	}
}

func TestFormatFieldValue(t *testing.T) {
	dateField := store.TemplateField{
		ID:         "f1",
		Name:       "日期",
		Type:       store.FieldDate,
		DateFormat: DateFormatDMYSlash,
	}
	fixedDateField := store.TemplateField{
		ID:         "f2",
		Name:       "固定日期",
		Type:       store.FieldFixedDate,
		DateFormat: DateFormatCompact,
	}
	textField := store.TemplateField{
		ID:   "f3",
		Name: "备注",
		Type: store.FieldFreeText,
	}

	if got := FormatFieldValue("2024-01-15", dateField); got != "15/01/2024" {
		t.Errorf("date 字段应该被转换，实际 %q", got)
	}
	if got := FormatFieldValue("2024-01-15", fixedDateField); got != "20240115" {
		t.Errorf("fixed_date 字段应该被转换，实际 %q", got)
	}
	// 非日期类型原样输出，即便值长得像日期
	if got := FormatFieldValue("2024-01-15", textField); got != "2024-01-15" {
		t.Errorf("文本字段不应被转换，实际 %q", got)
	}
	if got := FormatFieldValue("  带 空格  ", textField); got != "  带 空格  " {
		t.Errorf("文本字段不应被裁剪，实际 %q", got)
	}
}
