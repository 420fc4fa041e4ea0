package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/YuChen-Hu/scanform-cli/internal/backup"
	"github.com/YuChen-Hu/scanform-cli/internal/utils"
)

// RecordManager 记录文档管理器（dataRecords.json 整文档读写）
type RecordManager struct {
	store *RecordStoreFile
	path  string
}

// NewRecordManager 创建记录管理器（使用默认数据目录）
func NewRecordManager() (*RecordManager, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return nil, err
	}
	return NewRecordManagerWithDir(dataDir)
}

// NewRecordManagerWithDir 创建记录管理器（指定数据目录）
func NewRecordManagerWithDir(dataDir string) (*RecordManager, error) {
	m := &RecordManager{
		path: GetRecordsPath(dataDir),
	}

	if err := m.Load(); err != nil {
		return nil, err
	}

	return m, nil
}

// Load 加载记录文档；缺失或损坏回落为空集合
func (m *RecordManager) Load() error {
	m.store = &RecordStoreFile{
		Version: StoreVersion,
		Records: []DataRecord{},
	}

	if !utils.FileExists(m.path) {
		return nil
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("读取记录文件失败: %w", err)
	}

	var parsed RecordStoreFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil
	}

	if parsed.Records != nil {
		m.store.Records = parsed.Records
	}
	if parsed.Version > 0 {
		m.store.Version = parsed.Version
	}

	return nil
}

// Save 保存记录文档（先自动备份，再原子写入）
func (m *RecordManager) Save() error {
	if _, err := backup.CreateAutoBackup(m.path); err != nil {
		return fmt.Errorf("自动备份失败: %w", err)
	}

	return utils.WriteJSONFile(m.path, m.store, 0600)
}

// Path 返回记录文档路径
func (m *RecordManager) Path() string {
	return m.path
}

// Add 保存一条新记录
// 记录保存后不可修改（只能整条删除）；保存时深拷贝模板字段作为快照，
// 模板之后被删除时仍可降级展示
func (m *RecordManager) Add(t *Template, data map[string]string, fileName string) (*DataRecord, error) {
	if t == nil {
		return nil, fmt.Errorf("模板不能为空")
	}

	if data == nil {
		data = map[string]string{}
	}

	var snapshot []TemplateField
	if err := copier.CopyWithOption(&snapshot, t.Fields, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("复制字段快照失败: %w", err)
	}

	record := DataRecord{
		ID:             uuid.New().String(),
		TemplateID:     t.ID,
		TemplateName:   t.Name,
		Data:           data,
		Timestamp:      time.Now().UnixMilli(),
		DataFileName:   fileName,
		FieldsSnapshot: snapshot,
	}

	m.store.Records = append(m.store.Records, record)

	if err := m.Save(); err != nil {
		return nil, err
	}

	return &record, nil
}

// Delete 删除一条记录
func (m *RecordManager) Delete(id string) error {
	index := -1
	for i, r := range m.store.Records {
		if r.ID == id {
			index = i
			break
		}
	}

	if index == -1 {
		return fmt.Errorf("记录不存在: %s", id)
	}

	m.store.Records = append(m.store.Records[:index], m.store.Records[index+1:]...)

	return m.Save()
}

// Get 根据 ID 获取记录
func (m *RecordManager) Get(id string) (*DataRecord, error) {
	for _, r := range m.store.Records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("记录不存在: %s", id)
}

// List 列出所有记录（保持写入顺序）
func (m *RecordManager) List() []DataRecord {
	return m.store.Records
}

// ListByFile 列出指定文件分组下的记录
func (m *RecordManager) ListByFile(fileName string) []DataRecord {
	var out []DataRecord
	for _, r := range m.store.Records {
		if r.FileName() == fileName {
			out = append(out, r)
		}
	}
	return out
}

// ListByTemplate 列出指定模板的记录
func (m *RecordManager) ListByTemplate(templateID string) []DataRecord {
	var out []DataRecord
	for _, r := range m.store.Records {
		if r.TemplateID == templateID {
			out = append(out, r)
		}
	}
	return out
}

// FileGroups 从记录全量重算文件分组（派生数据，不持久化）
func (m *RecordManager) FileGroups() []FileGroup {
	counts := make(map[string]int)
	for _, r := range m.store.Records {
		counts[r.FileName()]++
	}

	groups := make([]FileGroup, 0, len(counts))
	for name, n := range counts {
		groups = append(groups, FileGroup{Name: name, RecordCount: n})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	return groups
}
