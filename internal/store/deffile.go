package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// templateDefinition 模板定义文件格式（YAML 或 TOML）
// 用于 `scanform template add --file` 非交互创建模板
type templateDefinition struct {
	Name        string            `yaml:"name" toml:"name"`
	Description string            `yaml:"description" toml:"description"`
	Fields      []fieldDefinition `yaml:"fields" toml:"fields"`
	Export      *exportDefinition `yaml:"export" toml:"export"`
}

type fieldDefinition struct {
	Name             string   `yaml:"name" toml:"name"`
	Type             string   `yaml:"type" toml:"type"`
	Required         bool     `yaml:"required" toml:"required"`
	Default          string   `yaml:"default" toml:"default"`
	Options          []string `yaml:"options" toml:"options"`
	DateFormat       string   `yaml:"dateFormat" toml:"dateFormat"`
	CustomDateFormat string   `yaml:"customDateFormat" toml:"customDateFormat"`
}

type exportDefinition struct {
	IncludeHeader   bool           `yaml:"includeHeader" toml:"includeHeader"`
	Delimiter       string         `yaml:"delimiter" toml:"delimiter"`
	CustomDelimiter string         `yaml:"customDelimiter" toml:"customDelimiter"`
	FileExtension   string         `yaml:"fileExtension" toml:"fileExtension"`
	Positions       map[string]int `yaml:"positions" toml:"positions"` // 字段名 -> 列位置
}

var validFieldTypes = map[FieldType]bool{
	FieldFreeText:  true,
	FieldNumber:    true,
	FieldDate:      true,
	FieldFixedData: true,
	FieldFixedDate: true,
	FieldBarcode:   true,
}

// LoadTemplateDefinition 从定义文件构造模板
// 根据扩展名选择解析器：.yaml/.yml 或 .toml
func LoadTemplateDefinition(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取模板定义文件失败: %w", err)
	}

	var def templateDefinition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("解析 YAML 模板定义失败: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("解析 TOML 模板定义失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的模板定义格式: %s (支持 .yaml/.yml/.toml)", filepath.Ext(path))
	}

	return def.toTemplate()
}

func (def *templateDefinition) toTemplate() (*Template, error) {
	t := &Template{
		ID:          uuid.New().String(),
		Name:        def.Name,
		Description: def.Description,
	}

	nameToID := make(map[string]string)
	for _, fd := range def.Fields {
		fieldType := FieldType(fd.Type)
		if fd.Type == "" {
			fieldType = FieldFreeText
		}
		if !validFieldTypes[fieldType] {
			return nil, fmt.Errorf("字段 '%s' 的类型无效: %s", fd.Name, fd.Type)
		}

		field := TemplateField{
			ID:               uuid.New().String(),
			Name:             fd.Name,
			Type:             fieldType,
			Required:         fd.Required,
			DefaultValue:     fd.Default,
			Options:          fd.Options,
			DateFormat:       fd.DateFormat,
			CustomDateFormat: fd.CustomDateFormat,
		}
		nameToID[fd.Name] = field.ID
		t.Fields = append(t.Fields, field)
	}

	settings := CSVExportSettings{
		IncludeHeader: true,
		Delimiter:     DelimiterComma,
		FileExtension: "csv",
	}

	if def.Export != nil {
		settings.IncludeHeader = def.Export.IncludeHeader
		if def.Export.Delimiter != "" {
			settings.Delimiter = DelimiterType(def.Export.Delimiter)
		}
		settings.CustomDelimiter = def.Export.CustomDelimiter
		settings.FileExtension = NormalizeFileExtension(def.Export.FileExtension)

		if len(def.Export.Positions) > 0 {
			settings.FieldPositions = make(map[string]int)
			for fieldName, pos := range def.Export.Positions {
				id, ok := nameToID[fieldName]
				if !ok {
					return nil, fmt.Errorf("导出位置引用了不存在的字段: %s", fieldName)
				}
				settings.FieldPositions[id] = pos
			}
		}
	}

	t.CSVSettings = settings

	if err := ValidateTemplate(t); err != nil {
		return nil, err
	}

	return t, nil
}
