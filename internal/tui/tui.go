package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

// Model TUI 主模型
// mode 取值: "files"（文件分组列表）、"records"（记录列表）、
// "entry"（数据录入表单）、"delete"（删除记录确认）
type Model struct {
	templates *store.TemplateManager
	records   *store.RecordManager

	mode    string
	width   int
	height  int
	err     error
	message string

	// files 模式
	groups      []store.FileGroup
	groupCursor int

	// records 模式
	activeGroup  string
	groupRecords []store.DataRecord
	recordCursor int
	deleteID     string

	// entry 模式
	template       *store.Template
	entryGroup     string
	inputs         []textinput.Model
	focusIndex     int
	selectorActive bool
	selectorCursor int
	savedCount     int
	standalone     bool // 直接从 collect 命令进入表单，esc 即退出
}

// New 创建浏览模式的 TUI 模型（文件分组 -> 记录）
func New(templates *store.TemplateManager, records *store.RecordManager) Model {
	m := Model{
		templates: templates,
		records:   records,
		mode:      "files",
	}
	m.refreshGroups()
	return m
}

// NewEntry 创建直接进入数据录入表单的 TUI 模型
func NewEntry(templates *store.TemplateManager, records *store.RecordManager, t *store.Template, fileName string) Model {
	m := Model{
		templates:  templates,
		records:    records,
		mode:       "entry",
		template:   t,
		entryGroup: fileName,
		standalone: true,
	}
	m.initEntryForm()
	return m
}

func (m *Model) refreshGroups() {
	m.groups = m.records.FileGroups()
	if m.groupCursor >= len(m.groups) {
		m.groupCursor = 0
	}
}

func (m *Model) refreshRecords() {
	m.groupRecords = m.records.ListByFile(m.activeGroup)
	if m.recordCursor >= len(m.groupRecords) {
		m.recordCursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	if m.mode == "entry" {
		return textinput.Blink
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch m.mode {
		case "files":
			return m.handleFilesKeys(msg)
		case "records":
			return m.handleRecordsKeys(msg)
		case "delete":
			return m.handleDeleteKeys(msg)
		case "entry":
			handled, newModel, cmd := m.handleEntryKeys(msg)
			if handled {
				return newModel, cmd
			}
			return m.updateInputs(msg)
		}
	}

	return m, nil
}

func (m Model) View() string {
	switch m.mode {
	case "files":
		return m.viewFiles()
	case "records":
		return m.viewRecords()
	case "delete":
		return m.viewDelete()
	case "entry":
		return m.viewEntry()
	}
	return ""
}
