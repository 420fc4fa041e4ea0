package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

func newTestManagers(t *testing.T) (*store.TemplateManager, *store.RecordManager) {
	t.Helper()
	dir := t.TempDir()
	tm, err := store.NewTemplateManagerWithDir(dir)
	if err != nil {
		t.Fatalf("创建模板管理器失败: %v", err)
	}
	rm, err := store.NewRecordManagerWithDir(dir)
	if err != nil {
		t.Fatalf("创建记录管理器失败: %v", err)
	}
	return tm, rm
}

func addEntryTemplate(t *testing.T, tm *store.TemplateManager) *store.Template {
	t.Helper()
	tmpl, err := tm.Add(store.Template{
		Name: "入库单",
		Fields: []store.TemplateField{
			{ID: "f1", Name: "货号", Type: store.FieldBarcode, Required: true},
			{ID: "f2", Name: "备注", Type: store.FieldFreeText},
		},
		CSVSettings: store.CSVExportSettings{
			IncludeHeader:  true,
			Delimiter:      store.DelimiterComma,
			FieldPositions: map[string]int{"f1": 1, "f2": 2},
		},
	})
	if err != nil {
		t.Fatalf("添加模板失败: %v", err)
	}
	return tmpl
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sendKeys(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestEntryFormSaveRecord(t *testing.T) {
	tm, rm := newTestManagers(t)
	tmpl := addEntryTemplate(t, tm)

	var m tea.Model = NewEntry(tm, rm, tmpl, "产线A")

	// 第一个字段输入货号，Enter 跳到下一个字段
	m = sendKeys(m, keyRunes("6901234567890"))
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter})
	// 末字段上 Enter 保存
	m = sendKeys(m, keyRunes("测试"))
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter})

	records := rm.List()
	if len(records) != 1 {
		t.Fatalf("记录数 = %d, 期望 1", len(records))
	}
	if records[0].Data["f1"] != "6901234567890" || records[0].Data["f2"] != "测试" {
		t.Errorf("记录数据不符: %+v", records[0].Data)
	}
	if records[0].FileName() != "产线A" {
		t.Errorf("文件分组 = %q", records[0].FileName())
	}

	// 保存后表单重置，可以直接录下一条
	model := m.(Model)
	if model.savedCount != 1 {
		t.Errorf("savedCount = %d", model.savedCount)
	}
	if model.inputs[0].Value() != "" {
		t.Error("保存后第一个字段应被清空")
	}
}

func TestEntryFormRequiredValidation(t *testing.T) {
	tm, rm := newTestManagers(t)
	tmpl := addEntryTemplate(t, tm)

	var m tea.Model = NewEntry(tm, rm, tmpl, "")

	// 必填字段留空直接保存
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	model := m.(Model)
	if model.err == nil {
		t.Error("必填字段为空应产生错误")
	}
	if len(rm.List()) != 0 {
		t.Error("校验失败不应保存记录")
	}
	if model.focusIndex != 0 {
		t.Error("焦点应跳回出错字段")
	}
}

func TestEntryFormFixedDataSelector(t *testing.T) {
	tm, rm := newTestManagers(t)
	tmpl, err := tm.Add(store.Template{
		Name: "班次",
		Fields: []store.TemplateField{
			{ID: "f1", Name: "班次", Type: store.FieldFixedData, Options: []string{"早班", "晚班"}},
		},
		CSVSettings: store.CSVExportSettings{Delimiter: store.DelimiterComma},
	})
	if err != nil {
		t.Fatalf("添加模板失败: %v", err)
	}

	var m tea.Model = NewEntry(tm, rm, tmpl, "")

	// Space 打开选择器，向下选一项，Enter 确认
	m = sendKeys(m, keyRunes(" "))
	if !m.(Model).selectorActive {
		t.Fatal("Space 应激活选择器")
	}
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	model := m.(Model)
	if model.selectorActive {
		t.Error("确认后选择器应关闭")
	}
	if model.inputs[0].Value() != "晚班" {
		t.Errorf("选择结果 = %q, 期望 晚班", model.inputs[0].Value())
	}
}

func TestFilesToRecordsNavigation(t *testing.T) {
	tm, rm := newTestManagers(t)
	tmpl := addEntryTemplate(t, tm)

	if _, err := rm.Add(tmpl, map[string]string{"f1": "A"}, "产线A"); err != nil {
		t.Fatalf("预置记录失败: %v", err)
	}

	var m tea.Model = New(tm, rm)
	if m.(Model).mode != "files" {
		t.Fatal("初始应为 files 模式")
	}

	view := m.View()
	if !strings.Contains(view, "产线A") {
		t.Errorf("文件列表应包含分组名: %s", view)
	}

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter})
	model := m.(Model)
	if model.mode != "records" {
		t.Errorf("Enter 后应进入 records 模式, 实际 %q", model.mode)
	}
	if model.activeGroup != "产线A" {
		t.Errorf("激活分组 = %q", model.activeGroup)
	}
	if len(model.groupRecords) != 1 {
		t.Errorf("分组记录数 = %d", len(model.groupRecords))
	}

	// Esc 回到 files
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(Model).mode != "files" {
		t.Error("Esc 后应回到 files 模式")
	}
}

func TestRecordsDeleteFlow(t *testing.T) {
	tm, rm := newTestManagers(t)
	tmpl := addEntryTemplate(t, tm)

	record, _ := rm.Add(tmpl, map[string]string{"f1": "A"}, "产线A")

	var m tea.Model = New(tm, rm)
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter}) // 进入 records
	m = sendKeys(m, keyRunes("d"))                  // 删除确认
	if m.(Model).mode != "delete" {
		t.Fatal("d 应进入删除确认")
	}

	// n 取消
	m = sendKeys(m, keyRunes("n"))
	if m.(Model).mode != "records" {
		t.Error("取消后应回到 records")
	}
	if len(rm.List()) != 1 {
		t.Error("取消不应删除记录")
	}

	// y 确认删除
	m = sendKeys(m, keyRunes("d"), keyRunes("y"))
	if len(rm.List()) != 0 {
		t.Error("确认后记录应被删除")
	}
	if _, err := rm.Get(record.ID); err == nil {
		t.Error("删除后不应能查到记录")
	}
}

func TestEntryFormFixedDateReadonly(t *testing.T) {
	tm, rm := newTestManagers(t)
	tmpl, err := tm.Add(store.Template{
		Name: "带固定日期",
		Fields: []store.TemplateField{
			{ID: "f1", Name: "日期", Type: store.FieldFixedDate, DefaultValue: "2024-01-15"},
			{ID: "f2", Name: "货号", Type: store.FieldFreeText},
		},
		CSVSettings: store.CSVExportSettings{Delimiter: store.DelimiterComma},
	})
	if err != nil {
		t.Fatalf("添加模板失败: %v", err)
	}

	var m tea.Model = NewEntry(tm, rm, tmpl, "")

	// 在只读字段上输入字符应报错且不改值
	m = sendKeys(m, keyRunes("x"))
	model := m.(Model)
	if model.err == nil {
		t.Error("编辑只读字段应提示错误")
	}
	if model.inputs[0].Value() != "2024-01-15" {
		t.Errorf("只读字段值被改动: %q", model.inputs[0].Value())
	}

	// Tab 到下一个字段输入并保存，固定日期应带默认值入库
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("W1"), tea.KeyMsg{Type: tea.KeyCtrlS})
	records := rm.List()
	if len(records) != 1 {
		t.Fatalf("记录数 = %d, 期望 1", len(records))
	}
	if records[0].Data["f1"] != "2024-01-15" {
		t.Errorf("固定日期值 = %q, 期望 2024-01-15", records[0].Data["f1"])
	}
}
