package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YuChen-Hu/scanform-cli/internal/backup"
	"github.com/YuChen-Hu/scanform-cli/internal/utils"
)

// TemplateManager 模板文档管理器
// 整文档读写：加载整个 templates.json 到内存，内存修改后整体覆盖写回
type TemplateManager struct {
	store *TemplateStoreFile
	path  string
}

// NewTemplateManager 创建模板管理器（使用默认数据目录）
func NewTemplateManager() (*TemplateManager, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return nil, err
	}
	return NewTemplateManagerWithDir(dataDir)
}

// NewTemplateManagerWithDir 创建模板管理器（指定数据目录）
func NewTemplateManagerWithDir(dataDir string) (*TemplateManager, error) {
	m := &TemplateManager{
		path: GetTemplatesPath(dataDir),
	}

	if err := m.Load(); err != nil {
		return nil, err
	}

	return m, nil
}

// Load 加载模板文档
// 文件缺失或 JSON 损坏都回落为空集合；损坏文件在下一次成功保存前保持原样
func (m *TemplateManager) Load() error {
	m.store = &TemplateStoreFile{
		Version:   StoreVersion,
		Templates: []Template{},
	}

	if !utils.FileExists(m.path) {
		return nil
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("读取模板文件失败: %w", err)
	}

	var parsed TemplateStoreFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		// 解析失败按"无数据"处理
		return nil
	}

	if parsed.Templates != nil {
		m.store.Templates = parsed.Templates
	}
	if parsed.Version > 0 {
		m.store.Version = parsed.Version
	}

	return nil
}

// Save 保存模板文档（先自动备份，再原子写入）
func (m *TemplateManager) Save() error {
	if _, err := backup.CreateAutoBackup(m.path); err != nil {
		return fmt.Errorf("自动备份失败: %w", err)
	}

	return utils.WriteJSONFile(m.path, m.store, 0600)
}

// Path 返回模板文档路径
func (m *TemplateManager) Path() string {
	return m.path
}

// Add 添加新模板
func (m *TemplateManager) Add(t Template) (*Template, error) {
	if err := ValidateTemplate(&t); err != nil {
		return nil, err
	}

	for _, existing := range m.store.Templates {
		if strings.EqualFold(existing.Name, t.Name) {
			return nil, fmt.Errorf("模板 '%s' 已存在", t.Name)
		}
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UnixMilli()
	t.CSVSettings.FileExtension = NormalizeFileExtension(t.CSVSettings.FileExtension)

	m.store.Templates = append(m.store.Templates, t)

	if err := m.Save(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Update 以整体替换方式更新模板（编辑 = 覆盖）
func (m *TemplateManager) Update(t Template) error {
	if err := ValidateTemplate(&t); err != nil {
		return err
	}

	index := -1
	for i, existing := range m.store.Templates {
		if existing.ID == t.ID {
			index = i
			continue
		}
		if strings.EqualFold(existing.Name, t.Name) {
			return fmt.Errorf("模板 '%s' 已存在", t.Name)
		}
	}

	if index == -1 {
		return fmt.Errorf("模板不存在: %s", t.ID)
	}

	t.CreatedAt = m.store.Templates[index].CreatedAt
	t.CSVSettings.FileExtension = NormalizeFileExtension(t.CSVSettings.FileExtension)
	m.store.Templates[index] = t

	return m.Save()
}

// Delete 删除模板
// 不级联删除记录：已有记录保留悬空的 templateId 和字段快照
func (m *TemplateManager) Delete(id string) error {
	index := -1
	for i, t := range m.store.Templates {
		if t.ID == id {
			index = i
			break
		}
	}

	if index == -1 {
		return fmt.Errorf("模板不存在: %s", id)
	}

	m.store.Templates = append(m.store.Templates[:index], m.store.Templates[index+1:]...)

	return m.Save()
}

// Get 根据 ID 获取模板
func (m *TemplateManager) Get(id string) (*Template, error) {
	for _, t := range m.store.Templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("模板不存在: %s", id)
}

// GetByName 根据名称获取模板（大小写不敏感）
func (m *TemplateManager) GetByName(name string) (*Template, error) {
	for _, t := range m.store.Templates {
		if strings.EqualFold(t.Name, name) {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("模板不存在: %s", name)
}

// List 列出所有模板
func (m *TemplateManager) List() []Template {
	return m.store.Templates
}
