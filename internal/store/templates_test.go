package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YuChen-Hu/scanform-cli/internal/utils"
)

func newTestTemplateManager(t *testing.T) *TemplateManager {
	t.Helper()
	m, err := NewTemplateManagerWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("创建模板管理器失败: %v", err)
	}
	return m
}

func TestTemplateManagerAdd(t *testing.T) {
	m := newTestTemplateManager(t)

	added, err := m.Add(validTemplate())
	if err != nil {
		t.Fatalf("添加模板失败: %v", err)
	}

	if added.ID == "" {
		t.Error("添加后应该生成 ID")
	}
	if added.CreatedAt == 0 {
		t.Error("添加后应该写入创建时间")
	}
	if added.CSVSettings.FileExtension != "csv" {
		t.Errorf("扩展名应规范化为 csv，实际 %q", added.CSVSettings.FileExtension)
	}

	if !utils.FileExists(m.Path()) {
		t.Error("添加后应该落盘")
	}
}

func TestTemplateManagerAddDuplicateName(t *testing.T) {
	m := newTestTemplateManager(t)

	if _, err := m.Add(validTemplate()); err != nil {
		t.Fatalf("首次添加失败: %v", err)
	}

	// 名称冲突大小写不敏感
	dup := validTemplate()
	dup.Name = "入库单"
	if _, err := m.Add(dup); err == nil {
		t.Error("重名模板应该被拒绝")
	}

	english := validTemplate()
	english.Name = "Inbound"
	if _, err := m.Add(english); err != nil {
		t.Fatalf("添加英文名模板失败: %v", err)
	}
	caseDup := validTemplate()
	caseDup.Name = "INBOUND"
	if _, err := m.Add(caseDup); err == nil {
		t.Error("大小写不同的重名应该被拒绝")
	}
}

func TestTemplateManagerUpdate(t *testing.T) {
	m := newTestTemplateManager(t)

	added, err := m.Add(validTemplate())
	if err != nil {
		t.Fatalf("添加模板失败: %v", err)
	}

	updated := *added
	updated.Name = "出库单"
	updated.Fields = append(updated.Fields, TemplateField{ID: "f3", Name: "备注", Type: FieldFreeText})
	updated.CreatedAt = 0 // 编辑不应改变创建时间

	if err := m.Update(updated); err != nil {
		t.Fatalf("更新模板失败: %v", err)
	}

	got, err := m.Get(added.ID)
	if err != nil {
		t.Fatalf("读取模板失败: %v", err)
	}
	if got.Name != "出库单" {
		t.Errorf("名称未更新: %q", got.Name)
	}
	if len(got.Fields) != 3 {
		t.Errorf("字段数 = %d, 期望 3", len(got.Fields))
	}
	if got.CreatedAt != added.CreatedAt {
		t.Error("编辑应保留原创建时间")
	}
}

func TestTemplateManagerUpdateNameCollision(t *testing.T) {
	m := newTestTemplateManager(t)

	first, _ := m.Add(validTemplate())
	second := validTemplate()
	second.Name = "出库单"
	if _, err := m.Add(second); err != nil {
		t.Fatalf("添加第二个模板失败: %v", err)
	}

	renamed := *first
	renamed.Name = "出库单"
	if err := m.Update(renamed); err == nil {
		t.Error("改名撞到其他模板应该被拒绝")
	}

	// 改回自己的名字（只变大小写）不算冲突
	same := *first
	same.Name = first.Name
	if err := m.Update(same); err != nil {
		t.Errorf("保持原名更新不应报错: %v", err)
	}
}

func TestTemplateManagerDelete(t *testing.T) {
	m := newTestTemplateManager(t)

	added, _ := m.Add(validTemplate())

	if err := m.Delete(added.ID); err != nil {
		t.Fatalf("删除模板失败: %v", err)
	}
	if _, err := m.Get(added.ID); err == nil {
		t.Error("删除后不应还能查到")
	}
	if err := m.Delete(added.ID); err == nil {
		t.Error("重复删除应该报错")
	}
}

func TestTemplateManagerGetByName(t *testing.T) {
	m := newTestTemplateManager(t)
	m.Add(validTemplate())

	if _, err := m.GetByName("入库单"); err != nil {
		t.Errorf("按名称查找失败: %v", err)
	}
	if _, err := m.GetByName("不存在"); err == nil {
		t.Error("查找不存在的名称应该报错")
	}
}

func TestTemplateManagerLoadMissing(t *testing.T) {
	m := newTestTemplateManager(t)
	if len(m.List()) != 0 {
		t.Error("文件缺失时应该是空集合")
	}
}

func TestTemplateManagerLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := GetTemplatesPath(dir)
	if err := os.WriteFile(path, []byte("{ 这不是 JSON"), 0600); err != nil {
		t.Fatalf("写损坏文件失败: %v", err)
	}

	m, err := NewTemplateManagerWithDir(dir)
	if err != nil {
		t.Fatalf("损坏文件不应导致加载失败: %v", err)
	}
	if len(m.List()) != 0 {
		t.Error("损坏文件应回落为空集合")
	}

	// 加载本身不应重写损坏的文件
	data, _ := os.ReadFile(path)
	if string(data) != "{ 这不是 JSON" {
		t.Error("加载不应改动磁盘上的损坏文件")
	}
}

func TestTemplateManagerPersistence(t *testing.T) {
	dir := t.TempDir()

	m1, _ := NewTemplateManagerWithDir(dir)
	added, err := m1.Add(validTemplate())
	if err != nil {
		t.Fatalf("添加模板失败: %v", err)
	}

	m2, err := NewTemplateManagerWithDir(dir)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}

	got, err := m2.Get(added.ID)
	if err != nil {
		t.Fatalf("重新加载后查不到模板: %v", err)
	}
	if got.Name != added.Name {
		t.Errorf("重新加载后名称 = %q, 期望 %q", got.Name, added.Name)
	}
}

func TestTemplateManagerSaveCreatesBackup(t *testing.T) {
	dir := t.TempDir()
	m, _ := NewTemplateManagerWithDir(dir)

	// 第一次保存时源文件还不存在，没有备份；第二次开始有
	if _, err := m.Add(validTemplate()); err != nil {
		t.Fatalf("添加模板失败: %v", err)
	}
	second := validTemplate()
	second.Name = "出库单"
	if _, err := m.Add(second); err != nil {
		t.Fatalf("添加第二个模板失败: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "backups"))
	if err != nil {
		t.Fatalf("读取备份目录失败: %v", err)
	}
	if len(entries) == 0 {
		t.Error("保存前应该创建自动备份")
	}
}
