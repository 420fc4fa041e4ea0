package export

import (
	"errors"
	"sort"
	"strings"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var (
	// ErrNoRecords 没有可导出的记录；调用方不应写出任何文件
	ErrNoRecords = errors.New("没有可导出的记录")
	// ErrTemplateMissing 无法解析记录所属的模板；调用方不应写出任何文件
	ErrTemplateMissing = errors.New("模板缺失")
)

// 未定位字段的排序哨兵，比任何真实位置都大
const unpositioned = int(^uint(0) >> 1)

// ResolveDelimiter 解析导出配置中实际使用的分隔符
func ResolveDelimiter(s store.CSVExportSettings) string {
	switch s.Delimiter {
	case store.DelimiterSemicolon:
		return ";"
	case store.DelimiterPipe:
		return "|"
	case store.DelimiterCustom:
		if s.CustomDelimiter == "" {
			return ","
		}
		return s.CustomDelimiter
	default:
		return ","
	}
}

// SortFieldsByPosition 按列位置稳定排序字段
// 位置 = fieldPositions[field.id]（仅在 > 0 时生效），否则排到最后；
// 相同位置保持字段列表原有顺序
func SortFieldsByPosition(fields []store.TemplateField, positions map[string]int) []store.TemplateField {
	sorted := make([]store.TemplateField, len(fields))
	copy(sorted, fields)

	position := func(f store.TemplateField) int {
		if pos, ok := positions[f.ID]; ok && pos > 0 {
			return pos
		}
		return unpositioned
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return position(sorted[i]) < position(sorted[j])
	})

	return sorted
}

// BuildCSV 将一个文件分组的记录序列化为分隔文本
// 纯函数：不触碰文件系统，不修改任何模板或记录状态
func BuildCSV(fields []store.TemplateField, settings store.CSVExportSettings, records []store.DataRecord) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	if len(fields) == 0 {
		return "", ErrTemplateMissing
	}

	delimiter := ResolveDelimiter(settings)
	ordered := SortFieldsByPosition(fields, settings.FieldPositions)

	var b strings.Builder

	if settings.IncludeHeader {
		cells := make([]string, len(ordered))
		for i, f := range ordered {
			cells[i] = quoteCSV(f.Name)
		}
		b.WriteString(strings.Join(cells, delimiter))
		b.WriteString("\n")
	}

	for _, record := range records {
		cells := make([]string, len(ordered))
		for i, f := range ordered {
			value := record.Data[f.ID] // 缺失的字段导出为空串
			value = FormatFieldValue(value, f)
			cells[i] = quoteCSV(value)
		}
		b.WriteString(strings.Join(cells, delimiter))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// quoteCSV 标准 CSV 引号转义：值内的双引号翻倍，再整体包裹双引号
func quoteCSV(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// FileExtension 返回导出文件的扩展名（规范化后）
func FileExtension(settings store.CSVExportSettings) string {
	return store.NormalizeFileExtension(settings.FileExtension)
}

// ExportFileName 导出文件名：<分组名>_export.<扩展名>
func ExportFileName(groupName string, settings store.CSVExportSettings) string {
	return groupName + "_export." + FileExtension(settings)
}

// MIMEType 导出文件的 MIME 类型
func MIMEType(ext string) string {
	if ext == "csv" {
		return "text/csv"
	}
	return "text/plain"
}
