package store

// FieldType 字段类型
type FieldType string

const (
	FieldFreeText  FieldType = "free_text"  // 自由文本
	FieldNumber    FieldType = "number"     // 数字
	FieldDate      FieldType = "date"       // 日期（录入时选择）
	FieldFixedData FieldType = "fixed_data" // 固定选项列表
	FieldFixedDate FieldType = "fixed_date" // 固定日期（模板预设）
	FieldBarcode   FieldType = "barcode"    // 条码扫描
)

// TemplateField 模板中的单个字段定义
type TemplateField struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             FieldType `json:"type"`
	Required         bool      `json:"required,omitempty"`
	DefaultValue     string    `json:"defaultValue,omitempty"`
	Options          []string  `json:"options,omitempty"`          // 仅 fixed_data 使用
	DateFormat       string    `json:"dateFormat,omitempty"`       // 仅 date/fixed_date 使用
	CustomDateFormat string    `json:"customDateFormat,omitempty"` // DateFormat 为 custom 时生效
}

// DelimiterType CSV 分隔符类型
type DelimiterType string

const (
	DelimiterComma     DelimiterType = "comma"
	DelimiterSemicolon DelimiterType = "semicolon"
	DelimiterPipe      DelimiterType = "pipe"
	DelimiterCustom    DelimiterType = "custom"
)

// CSVExportSettings 每个模板的 CSV 导出配置
type CSVExportSettings struct {
	IncludeHeader   bool           `json:"includeHeader"`
	Delimiter       DelimiterType  `json:"delimiter"`
	CustomDelimiter string         `json:"customDelimiter,omitempty"` // Delimiter 为 custom 时的字面分隔符
	FieldPositions  map[string]int `json:"fieldPositions,omitempty"`  // 字段 ID -> 1 起始的列位置；0 或缺失表示未定位
	FileExtension   string         `json:"fileExtension,omitempty"`   // 小写字母数字，默认 csv
}

// Template 模板：一组字段定义加导出配置
type Template struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Fields      []TemplateField   `json:"fields"`
	CSVSettings CSVExportSettings `json:"csvExportSettings"`
	CreatedAt   int64             `json:"createdAt,omitempty"` // 毫秒时间戳
}

// DefaultFileName 记录未指定分组时使用的分组名
const DefaultFileName = "Unnamed File"

// DataRecord 一条已填写的记录
// TemplateID 是弱引用：模板删除后它会悬空，此时依赖 FieldsSnapshot 降级展示
type DataRecord struct {
	ID             string            `json:"id"`
	TemplateID     string            `json:"templateId"`
	TemplateName   string            `json:"templateName"`
	Data           map[string]string `json:"data"`
	Timestamp      int64             `json:"timestamp"` // 毫秒时间戳
	DataFileName   string            `json:"dataFileName,omitempty"`
	FieldsSnapshot []TemplateField   `json:"fieldsSnapshot,omitempty"` // 记录创建时的字段快照
}

// FileName 返回记录所属的文件分组名（缺省回落到 DefaultFileName）
func (r DataRecord) FileName() string {
	if r.DataFileName == "" {
		return DefaultFileName
	}
	return r.DataFileName
}

// FileGroup 派生的文件分组（不持久化），每次加载时从记录全量重算
type FileGroup struct {
	Name        string
	RecordCount int
}

// TemplateStoreFile templates.json 的文档结构
type TemplateStoreFile struct {
	Version   int        `json:"version"`
	Templates []Template `json:"templates"`
}

// RecordStoreFile dataRecords.json 的文档结构
type RecordStoreFile struct {
	Version int          `json:"version"`
	Records []DataRecord `json:"records"`
}

// StoreVersion 当前文档版本
const StoreVersion = 1

// ExportBundle 模板导出/导入包
type ExportBundle struct {
	Templates  []Template `json:"templates"`
	ExportDate string     `json:"exportDate"` // ISO-8601
	AppVersion string     `json:"appVersion"`
}

// ScannedItem 旧版快速扫描日志条目
type ScannedItem struct {
	Data      string `json:"data"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}
