package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleFilesKeys 处理文件分组列表的键盘事件
func (m Model) handleFilesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if len(m.groups) > 0 {
			if m.groupCursor > 0 {
				m.groupCursor--
			} else {
				m.groupCursor = len(m.groups) - 1
			}
		}
	case "down", "j":
		if len(m.groups) > 0 {
			if m.groupCursor < len(m.groups)-1 {
				m.groupCursor++
			} else {
				m.groupCursor = 0
			}
		}
	case "enter":
		if len(m.groups) > 0 {
			m.activeGroup = m.groups[m.groupCursor].Name
			m.recordCursor = 0
			m.refreshRecords()
			m.mode = "records"
			m.message = ""
			m.err = nil
		}
	case "r":
		m.refreshGroups()
		m.message = "列表已刷新"
		m.err = nil
	}
	return m, nil
}

// viewFiles 渲染文件分组列表
func (m Model) viewFiles() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("scanform · 文件分组"))
	b.WriteString("\n\n")

	if len(m.groups) == 0 {
		b.WriteString(normalItemStyle.Render("暂无记录，使用 'scanform collect <模板>' 开始采集"))
		b.WriteString("\n")
	} else {
		for i, g := range m.groups {
			line := fmt.Sprintf("%s %s", truncate(g.Name, 40),
				countStyle.Render(fmt.Sprintf("(%d 条记录)", g.RecordCount)))
			if i == m.groupCursor {
				b.WriteString(selectedItemStyle.Render("› " + line))
			} else {
				b.WriteString(normalItemStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(successMessageStyle.Render("✓ " + m.message))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ 移动  Enter 查看记录  r 刷新  q 退出"))
	b.WriteString("\n")

	return b.String()
}
