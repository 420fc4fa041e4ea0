package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

// handleRecordsKeys 处理记录列表的键盘事件
func (m Model) handleRecordsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = "files"
		m.refreshGroups()
		m.message = ""
		m.err = nil
	case "up", "k":
		if len(m.groupRecords) > 0 && m.recordCursor > 0 {
			m.recordCursor--
		}
	case "down", "j":
		if len(m.groupRecords) > 0 && m.recordCursor < len(m.groupRecords)-1 {
			m.recordCursor++
		}
	case "d":
		if len(m.groupRecords) > 0 {
			m.deleteID = m.groupRecords[m.recordCursor].ID
			m.mode = "delete"
		}
	case "r":
		m.refreshRecords()
		m.message = "列表已刷新"
		m.err = nil
	}
	return m, nil
}

// handleDeleteKeys 处理删除确认的键盘事件
func (m Model) handleDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.records.Delete(m.deleteID); err != nil {
			m.err = err
			m.message = ""
		} else {
			m.message = i18n.T("record_deleted")
			m.err = nil
		}
		m.deleteID = ""
		m.mode = "records"
		m.refreshRecords()
	case "n", "N", "esc":
		m.deleteID = ""
		m.mode = "records"
	}
	return m, nil
}

// viewRecords 渲染记录列表和当前记录详情
func (m Model) viewRecords() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("记录 · %s", m.activeGroup)))
	b.WriteString("\n\n")

	if len(m.groupRecords) == 0 {
		b.WriteString(normalItemStyle.Render("此分组暂无记录"))
		b.WriteString("\n")
	} else {
		for i, r := range m.groupRecords {
			line := fmt.Sprintf("%s  %s", formatTimestamp(r.Timestamp), truncate(r.TemplateName, 30))
			if i == m.recordCursor {
				b.WriteString(selectedItemStyle.Render("› " + line))
			} else {
				b.WriteString(normalItemStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(m.viewRecordDetail(m.groupRecords[m.recordCursor]))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(successMessageStyle.Render("✓ " + m.message))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ 移动  d 删除  r 刷新  Esc 返回  q 退出"))
	b.WriteString("\n")

	return b.String()
}

// viewRecordDetail 渲染单条记录的字段详情
// 模板已删除时按快照降级展示；完全无法解析时提示模板缺失
func (m Model) viewRecordDetail(record store.DataRecord) string {
	t, _ := m.templates.Get(record.TemplateID)
	ref := store.ResolveTemplateRef(t, record)

	var b strings.Builder

	switch ref.Kind {
	case store.RefUnknown:
		b.WriteString(warningMessageStyle.Render("⚠ " + i18n.T("error.template_missing")))
		b.WriteString("\n")
	default:
		if ref.Kind == store.RefSnapshot {
			b.WriteString(warningMessageStyle.Render("⚠ 模板已删除，按保存时的字段快照展示"))
			b.WriteString("\n")
		}
		var detail strings.Builder
		for _, f := range ref.Fields() {
			value := record.Data[f.ID]
			if value == "" {
				value = "-"
			}
			detail.WriteString(fmt.Sprintf("%s: %s\n", fieldLabelStyle.Render(f.Name), value))
		}
		b.WriteString(panelStyle.Render(strings.TrimRight(detail.String(), "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

// viewDelete 渲染删除确认
func (m Model) viewDelete() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("删除记录"))
	b.WriteString("\n\n")
	b.WriteString(normalItemStyle.Render(i18n.Tf("confirm.delete_record_message", m.deleteID)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("y 确认删除  n/Esc 取消"))
	b.WriteString("\n")

	return b.String()
}
