package i18n

import (
	"fmt"

	"github.com/YuChen-Hu/scanform-cli/internal/settings"
)

var currentLanguage = "zh" // 默认中文

// messages 多语言消息定义
var messages = map[string]map[string]string{
	"en": {
		// Common
		"success": "Success",
		"failed":  "Failed",
		"error":   "Error",
		"warning": "Warning",

		// Template operations
		"template_added":     "Template added successfully",
		"template_updated":   "Template updated successfully",
		"template_deleted":   "Template deleted successfully",
		"template_not_found": "Template not found",
		"template_imported":  "Templates imported successfully",
		"template_exported":  "Templates exported successfully",

		// Record operations
		"record_saved":     "Record saved",
		"record_deleted":   "Record deleted",
		"record_not_found": "Record not found",

		// Export
		"export_done":        "CSV export completed",
		"export_no_data":     "No records to export",
		"export_no_template": "Template missing, cannot export",

		// Validation
		"validation_failed":         "Validation failed",
		"error.name_required":       "Template name is required",
		"error.fields_required":     "At least one field is required",
		"error.field_name_required": "Field name is required",
		"error.options_required":    "Fixed data fields need at least one option",
		"error.duplicate_positions": "Duplicate column positions",
		"error.required_field":      "This field is required",
		"error.invalid_date":        "Date must be YYYY-MM-DD",
		"error.invalid_number":      "Value must be a number",
		"error.readonly_field":      "This field is fixed, its value cannot be edited",
		"error.template_missing":    "Template missing, cannot continue input",

		// File operations
		"file_not_found":  "File not found",
		"invalid_json":    "Invalid JSON file format",
		"backup_created":  "Backup created",
		"backup_restored": "Backup restored",

		// TUI
		"success.record_saved":            "Record saved",
		"confirm.delete_record_message":   "Delete record '%s'?",
		"confirm.delete_template_message": "Are you sure you want to delete template '%s'?",
	},
	"zh": {
		// Common
		"success": "成功",
		"failed":  "失败",
		"error":   "错误",
		"warning": "警告",

		// Template operations
		"template_added":     "模板添加成功",
		"template_updated":   "模板更新成功",
		"template_deleted":   "模板删除成功",
		"template_not_found": "未找到模板",
		"template_imported":  "模板导入成功",
		"template_exported":  "模板导出成功",

		// Record operations
		"record_saved":     "记录已保存",
		"record_deleted":   "记录已删除",
		"record_not_found": "未找到记录",

		// Export
		"export_done":        "CSV 导出完成",
		"export_no_data":     "没有可导出的记录",
		"export_no_template": "模板缺失，无法导出",

		// Validation
		"validation_failed":         "校验失败",
		"error.name_required":       "模板名称不能为空",
		"error.fields_required":     "至少需要一个字段",
		"error.field_name_required": "字段名称不能为空",
		"error.options_required":    "固定数据字段至少需要一个选项",
		"error.duplicate_positions": "列位置重复",
		"error.required_field":      "此字段为必填项",
		"error.invalid_date":        "日期格式必须为 YYYY-MM-DD",
		"error.invalid_number":      "必须输入数字",
		"error.readonly_field":      "此字段为固定值，不可编辑",
		"error.template_missing":    "模板缺失，无法继续录入",

		// File operations
		"file_not_found":  "文件未找到",
		"invalid_json":    "无效的 JSON 文件格式",
		"backup_created":  "备份已创建",
		"backup_restored": "备份已恢复",

		// TUI
		"success.record_saved":            "记录已保存",
		"confirm.delete_record_message":   "确定删除记录 '%s' 吗？",
		"confirm.delete_template_message": "确定要删除模板 '%s' 吗？",
	},
}

// Init 初始化语言设置
func Init() error {
	manager, err := settings.NewManager()
	if err != nil {
		// 如果加载设置失败，使用默认语言
		return nil
	}

	lang := manager.GetLanguage()
	if lang == "en" || lang == "zh" {
		currentLanguage = lang
	}

	return nil
}

// SetLanguage 切换当前语言
func SetLanguage(lang string) error {
	if lang != "en" && lang != "zh" {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	currentLanguage = lang
	return nil
}

// GetLanguage 获取当前语言
func GetLanguage() string {
	return currentLanguage
}

// T 翻译指定的消息 key；找不到时原样返回 key
func T(key string) string {
	if langMessages, ok := messages[currentLanguage]; ok {
		if msg, ok := langMessages[key]; ok {
			return msg
		}
	}

	// 回退到英文
	if msg, ok := messages["en"][key]; ok {
		return msg
	}

	return key
}

// Tf 翻译并格式化消息
func Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(T(key), args...)
}
