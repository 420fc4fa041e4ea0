package store

// TemplateRefKind 记录到模板的解析结果类型
type TemplateRefKind int

const (
	// RefResolved 模板仍然存在
	RefResolved TemplateRefKind = iota
	// RefSnapshot 模板已删除，但记录保留了字段快照
	RefSnapshot
	// RefUnknown 模板已删除且没有快照
	RefUnknown
)

// TemplateRef 记录所属模板的解析结果
// 显式三态建模，避免在调用方到处做 nil 判断
type TemplateRef struct {
	Kind     TemplateRefKind
	Template *Template       // 仅 RefResolved 时非空
	fields   []TemplateField // RefSnapshot 时来自快照
	name     string
}

// ResolveTemplateRef 解析一条记录所属的模板
// t 为调用方查找到的模板，找不到时传 nil
func ResolveTemplateRef(t *Template, record DataRecord) TemplateRef {
	if t != nil {
		return TemplateRef{
			Kind:     RefResolved,
			Template: t,
			fields:   t.Fields,
			name:     t.Name,
		}
	}

	if len(record.FieldsSnapshot) > 0 {
		return TemplateRef{
			Kind:   RefSnapshot,
			fields: record.FieldsSnapshot,
			name:   record.TemplateName,
		}
	}

	return TemplateRef{
		Kind: RefUnknown,
		name: record.TemplateName,
	}
}

// Fields 返回可用于展示/导出的字段列表
func (ref TemplateRef) Fields() []TemplateField {
	return ref.fields
}

// DisplayName 返回模板显示名
func (ref TemplateRef) DisplayName() string {
	return ref.name
}

// CanContinueInput 是否允许继续录入：只有模板仍然存在时才允许
func (ref TemplateRef) CanContinueInput() bool {
	return ref.Kind == RefResolved
}

// CanExport 是否可用于导出
// 导出配置（分隔符、列位置）只存在于模板上，快照只有字段定义，
// 因此导出和继续录入一样要求模板仍然存在
func (ref TemplateRef) CanExport() bool {
	return ref.Kind == RefResolved
}
