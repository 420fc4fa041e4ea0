package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/version"
)

// MarshalBundle 生成模板导出包（格式化 JSON）
func MarshalBundle(templates []Template) ([]byte, error) {
	bundle := ExportBundle{
		Templates:  templates,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		AppVersion: version.GetVersion(),
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("序列化导出包失败: %w", err)
	}

	return data, nil
}

// ImportBundle 从导出包导入模板
// 整体成功或整体失败：任何一个导入模板的名称与现有模板大小写不敏感冲突时，
// 拒绝整个导入，不做部分应用
func (m *TemplateManager) ImportBundle(data []byte) (int, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("%s", i18n.T("invalid_json"))
	}

	templatesJSON, ok := raw["templates"]
	if !ok {
		return 0, fmt.Errorf("导入文件缺少 templates 字段")
	}

	var incoming []Template
	if err := json.Unmarshal(templatesJSON, &incoming); err != nil {
		return 0, fmt.Errorf("导入文件的 templates 不是模板列表")
	}

	// 先整体检查名称冲突（包括导入包内部的重名）
	seen := make(map[string]string)
	for _, t := range m.store.Templates {
		seen[strings.ToLower(t.Name)] = t.Name
	}
	for _, t := range incoming {
		key := strings.ToLower(t.Name)
		if existing, collides := seen[key]; collides {
			return 0, fmt.Errorf("模板名称冲突: '%s' 与 '%s'，导入已全部取消", t.Name, existing)
		}
		seen[key] = t.Name
	}

	existingIDs := make(map[string]bool)
	for _, t := range m.store.Templates {
		existingIDs[t.ID] = true
	}

	for _, t := range incoming {
		if err := ValidateTemplate(&t); err != nil {
			return 0, fmt.Errorf("导入模板 '%s' 无效: %w", t.Name, err)
		}

		// 名称唯一但 ID 撞车时重新生成，避免污染 ID 空间
		if t.ID == "" || existingIDs[t.ID] {
			t.ID = uuid.New().String()
		}
		existingIDs[t.ID] = true

		if t.CreatedAt == 0 {
			t.CreatedAt = time.Now().UnixMilli()
		}
		t.CSVSettings.FileExtension = NormalizeFileExtension(t.CSVSettings.FileExtension)

		m.store.Templates = append(m.store.Templates, t)
	}

	if err := m.Save(); err != nil {
		return 0, err
	}

	return len(incoming), nil
}
