package tui

import "github.com/charmbracelet/lipgloss"

var (
	// 颜色定义
	primaryColor   = lipgloss.Color("#0A84FF")
	successColor   = lipgloss.Color("#30D158")
	dangerColor    = lipgloss.Color("#FF453A")
	warningColor   = lipgloss.Color("#FF9F0A")
	subtleColor    = lipgloss.Color("#8E8E93")
	borderColor    = lipgloss.Color("#D1D1D6")
	selectedBg     = lipgloss.Color("#F2F2F7")
	mutedTextColor = lipgloss.Color("#6C6C70")

	// 标题样式
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// 帮助文本样式
	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Padding(0, 1)

	// 选中项样式
	selectedItemStyle = lipgloss.NewStyle().
				Background(selectedBg).
				Foreground(primaryColor).
				Bold(true).
				Padding(0, 1)

	// 普通项样式
	normalItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// 记录数标记样式
	countStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// 面板边框样式
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)

	// 字段标签样式
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true)

	// 必填标记样式
	requiredMarkStyle = lipgloss.NewStyle().
				Foreground(dangerColor)

	// 只读字段样式
	readonlyStyle = lipgloss.NewStyle().
			Foreground(mutedTextColor)

	// 选择器选项样式
	selectorItemStyle = lipgloss.NewStyle().
				Padding(0, 2)

	// 选择器选中项样式
	selectorActiveStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true).
				Padding(0, 2)

	// 成功消息样式
	successMessageStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	// 错误消息样式
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(dangerColor).
				Bold(true)

	// 警告消息样式
	warningMessageStyle = lipgloss.NewStyle().
				Foreground(warningColor)
)
