package tui

import (
	"time"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

// truncate 截断超长字符串用于列表展示
func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		if len(s) <= max {
			return s
		}
		return s[:max]
	}
	return s[:max-3] + "..."
}

// formatTimestamp 将毫秒时间戳格式化为本地时间
func formatTimestamp(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

// fieldTypeLabel 字段类型的展示标签
func fieldTypeLabel(t store.FieldType) string {
	switch t {
	case store.FieldFreeText:
		return "文本"
	case store.FieldNumber:
		return "数字"
	case store.FieldDate:
		return "日期"
	case store.FieldFixedData:
		return "选项"
	case store.FieldFixedDate:
		return "固定日期"
	case store.FieldBarcode:
		return "条码"
	default:
		return string(t)
	}
}
