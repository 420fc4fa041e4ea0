package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/YuChen-Hu/scanform-cli/internal/i18n"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

// initEntryForm 按模板字段初始化录入表单
// 默认值预填；fixed_date 固定为模板设定的值，不可编辑
func (m *Model) initEntryForm() {
	m.inputs = make([]textinput.Model, len(m.template.Fields))
	m.focusIndex = 0
	m.selectorActive = false

	for i, f := range m.template.Fields {
		input := textinput.New()
		input.CharLimit = 256
		input.Width = 40

		switch f.Type {
		case store.FieldDate:
			input.Placeholder = "YYYY-MM-DD"
		case store.FieldNumber:
			input.Placeholder = "0"
		case store.FieldFixedData:
			input.Placeholder = "Space 选择选项"
		case store.FieldBarcode:
			input.Placeholder = "扫描或输入条码"
		}

		if f.DefaultValue != "" {
			input.SetValue(f.DefaultValue)
		}

		if i == 0 {
			input.Focus()
		}

		m.inputs[i] = input
	}
}

// handleEntryKeys 处理录入表单的特殊键，返回 (是否已处理, model, cmd)
func (m Model) handleEntryKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// 选择器激活时优先处理
	if m.selectorActive {
		options := m.selectorOptions()
		switch keyStr {
		case "up":
			if m.selectorCursor > 0 {
				m.selectorCursor--
			}
			return true, m, nil
		case "down":
			if m.selectorCursor < len(options)-1 {
				m.selectorCursor++
			}
			return true, m, nil
		case "enter":
			if len(options) > 0 {
				m.inputs[m.focusIndex].SetValue(options[m.selectorCursor])
			}
			m.selectorActive = false
			return true, m, nil
		case "esc", " ":
			m.selectorActive = false
			return true, m, nil
		}
		return true, m, nil
	}

	field := m.template.Fields[m.focusIndex]

	// fixed_data 字段用 Space 打开选择器
	if field.Type == store.FieldFixedData && keyStr == " " {
		options := m.selectorOptions()
		if len(options) == 0 {
			return false, m, nil
		}
		m.selectorActive = true
		m.selectorCursor = indexOfOption(options, m.inputs[m.focusIndex].Value())
		if m.selectorCursor < 0 {
			m.selectorCursor = 0
		}
		m.err = nil
		m.message = "选择器已激活，方向键选择，Enter 确认"
		return true, m, nil
	}

	// fixed_date 字段只读
	if field.Type == store.FieldFixedDate {
		switch keyStr {
		case "tab", "shift+tab", "up", "down", "enter", "esc", "ctrl+c", "ctrl+s":
			// 导航键继续走通用处理
		default:
			m.err = fmt.Errorf("%s", i18n.T("error.readonly_field"))
			return true, m, nil
		}
	}

	switch keyStr {
	case "ctrl+c":
		return true, m, tea.Quit
	case "esc":
		if m.standalone {
			return true, m, tea.Quit
		}
		m.mode = "records"
		m.refreshRecords()
		m.message = ""
		m.err = nil
		return true, m, nil
	case "ctrl+d":
		m.clearFormFields()
		return true, m, nil
	case "tab", "shift+tab", "up", "down":
		if keyStr == "shift+tab" || keyStr == "up" {
			m.focusIndex--
		} else {
			m.focusIndex++
		}
		if m.focusIndex >= len(m.inputs) {
			m.focusIndex = 0
		}
		if m.focusIndex < 0 {
			m.focusIndex = len(m.inputs) - 1
		}
		return true, m, m.focusCurrentInput()
	case "enter":
		// 最后一个字段上按 Enter 保存本条记录
		if m.focusIndex == len(m.inputs)-1 {
			return true, m.saveRecord(), nil
		}
		m.focusIndex++
		return true, m, m.focusCurrentInput()
	case "ctrl+s":
		return true, m.saveRecord(), nil
	}

	return false, m, nil
}

// updateInputs 把按键传给当前聚焦的输入框
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// focusCurrentInput 聚焦当前字段的输入框
func (m *Model) focusCurrentInput() tea.Cmd {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return textinput.Blink
}

// selectorOptions 当前字段的可选项（仅 fixed_data）
func (m Model) selectorOptions() []string {
	field := m.template.Fields[m.focusIndex]
	if field.Type != store.FieldFixedData {
		return nil
	}
	return field.Options
}

func indexOfOption(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return -1
}

// clearFormFields 清空所有非固定字段，重新填入默认值
func (m *Model) clearFormFields() {
	for i, f := range m.template.Fields {
		m.inputs[i].SetValue(f.DefaultValue)
	}
	m.message = "表单已重置"
	m.err = nil
}

// saveRecord 校验并保存一条记录，然后重置表单准备录入下一条
// 必填和类型校验只在录入时执行；校验失败不产生部分保存
func (m Model) saveRecord() Model {
	data := make(map[string]string)
	for i, f := range m.template.Fields {
		value := strings.TrimSpace(m.inputs[i].Value())

		if err := store.ValidateFieldValue(f, value); err != nil {
			m.err = err
			m.message = ""
			m.focusIndex = i
			m.focusCurrentInput()
			return m
		}

		if value != "" {
			data[f.ID] = value
		}
	}

	if _, err := m.records.Add(m.template, data, m.entryGroup); err != nil {
		m.err = err
		m.message = ""
		return m
	}

	m.savedCount++
	m.err = nil
	m.clearFormFields()
	m.message = fmt.Sprintf("%s (#%d)", i18n.T("success.record_saved"), m.savedCount)
	m.focusIndex = 0
	m.focusCurrentInput()

	return m
}

// viewEntry 渲染数据录入表单
func (m Model) viewEntry() string {
	var b strings.Builder

	group := m.entryGroup
	if group == "" {
		group = store.DefaultFileName
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("录入 · %s → %s", m.template.Name, group)))
	b.WriteString("\n\n")

	for i, f := range m.template.Fields {
		label := fieldLabelStyle.Render(f.Name)
		if f.Required {
			label += requiredMarkStyle.Render(" *")
		}
		label += countStyle.Render(fmt.Sprintf(" [%s]", fieldTypeLabel(f.Type)))

		b.WriteString(normalItemStyle.Render(label))
		b.WriteString("\n")

		if f.Type == store.FieldFixedDate {
			b.WriteString(normalItemStyle.Render(readonlyStyle.Render("  " + m.inputs[i].Value() + " (固定)")))
		} else {
			b.WriteString(normalItemStyle.Render(m.inputs[i].View()))
		}
		b.WriteString("\n")

		// 在当前 fixed_data 字段下方展开选择器
		if m.selectorActive && i == m.focusIndex {
			for j, opt := range m.selectorOptions() {
				if j == m.selectorCursor {
					b.WriteString(selectorActiveStyle.Render("› " + opt))
				} else {
					b.WriteString(selectorItemStyle.Render("  " + opt))
				}
				b.WriteString("\n")
			}
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

	b.WriteString(helpStyle.Render("Tab/↑/↓ 切换字段  Enter(末字段)/Ctrl+S 保存  Ctrl+D 重置  Esc 退出"))
	b.WriteString("\n")

	return b.String()
}
