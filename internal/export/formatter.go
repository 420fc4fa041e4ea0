package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

// 字段上可配置的日期输出格式
const (
	DateFormatDMYSlash = "dd/MM/yyyy"
	DateFormatMDYSlash = "MM/dd/yyyy"
	DateFormatCompact  = "yyyyMMdd"
	DateFormatDMYDash  = "dd-MM-yyyy"
	DateFormatYMDDot   = "yyyy.MM.dd"
	DateFormatCustom   = "custom"
)

// FormatFieldValue 将存储的原始字段值转换为导出用的字符串
// 只有 date/fixed_date 会被转换，其余类型原样输出（不裁剪、不变换）
func FormatFieldValue(value string, field store.TemplateField) string {
	if field.Type != store.FieldDate && field.Type != store.FieldFixedDate {
		return value
	}
	return formatDate(value, field.DateFormat, field.CustomDateFormat)
}

// formatDate 按配置的日期格式重排 YYYY-MM-DD 存储值
// 任何解析失败都原样返回输入，绝不报错（fail open）
func formatDate(value, format, customFormat string) string {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return value
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return value
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return value
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return value
	}

	// 月/日补零到两位，年份不补
	yyyy := strconv.Itoa(year)
	mm := fmt.Sprintf("%02d", month)
	dd := fmt.Sprintf("%02d", day)

	switch format {
	case DateFormatDMYSlash:
		return dd + "/" + mm + "/" + yyyy
	case DateFormatMDYSlash:
		return mm + "/" + dd + "/" + yyyy
	case DateFormatCompact:
		return yyyy + mm + dd
	case DateFormatDMYDash:
		return dd + "-" + mm + "-" + yyyy
	case DateFormatYMDDot:
		return yyyy + "." + mm + "." + dd
	case DateFormatCustom:
		if customFormat == "" {
			return value
		}
		out := strings.ReplaceAll(customFormat, "yyyy", yyyy)
		out = strings.ReplaceAll(out, "MM", mm)
		out = strings.ReplaceAll(out, "dd", dd)
		return out
	default:
		// 未知或未设置的格式：存储格式本身就是规范形式
		return value
	}
}
