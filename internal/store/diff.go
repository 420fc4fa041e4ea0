package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TemplateDiff 生成模板编辑前后的 unified diff（基于格式化 JSON）
// 用于编辑确认前的变更预览
func TemplateDiff(oldTemplate, newTemplate *Template) (string, error) {
	oldJSON, err := json.MarshalIndent(oldTemplate, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化原模板失败: %w", err)
	}
	newJSON, err := json.MarshalIndent(newTemplate, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化新模板失败: %w", err)
	}

	return GenerateDiff(string(oldJSON), string(newJSON),
		oldTemplate.Name+" (当前)", newTemplate.Name+" (修改后)"), nil
}

// GenerateDiff 生成两个文本之间的 unified diff
func GenerateDiff(oldText, newText, oldLabel, newLabel string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	if len(diffs) == 0 || (len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual) {
		return "No differences found."
	}

	patches := dmp.PatchMake(oldText, diffs)
	unified := dmp.PatchToText(patches)

	if unified == "" {
		return "No differences found."
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("--- %s\n", oldLabel))
	result.WriteString(fmt.Sprintf("+++ %s\n", newLabel))
	result.WriteString(unified)

	return result.String()
}

// FormatDiffForCLI 为 CLI 输出格式化 diff（带颜色）
func FormatDiffForCLI(diff string) string {
	lines := strings.Split(diff, "\n")
	var result strings.Builder

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			result.WriteString("\033[1m" + line + "\033[0m\n") // Bold
		case strings.HasPrefix(line, "-"):
			result.WriteString("\033[31m" + line + "\033[0m\n") // Red
		case strings.HasPrefix(line, "+"):
			result.WriteString("\033[32m" + line + "\033[0m\n") // Green
		case strings.HasPrefix(line, "@@"):
			result.WriteString("\033[36m" + line + "\033[0m\n") // Cyan
		default:
			result.WriteString(line + "\n")
		}
	}

	return result.String()
}
