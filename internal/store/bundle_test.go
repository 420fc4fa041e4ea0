package store

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshalBundle(t *testing.T) {
	tmpl := validTemplate()
	tmpl.ID = "t1"

	data, err := MarshalBundle([]Template{tmpl})
	if err != nil {
		t.Fatalf("生成导出包失败: %v", err)
	}

	var bundle ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatalf("导出包应是合法 JSON: %v", err)
	}
	if len(bundle.Templates) != 1 || bundle.Templates[0].ID != "t1" {
		t.Error("导出包应包含传入的模板")
	}
	if bundle.ExportDate == "" || bundle.AppVersion == "" {
		t.Error("导出包应包含导出时间和版本")
	}
}

func TestImportBundle(t *testing.T) {
	t.Run("正常导入", func(t *testing.T) {
		m := newTestTemplateManager(t)

		tmpl := validTemplate()
		tmpl.ID = "t1"
		data, _ := MarshalBundle([]Template{tmpl})

		count, err := m.ImportBundle(data)
		if err != nil {
			t.Fatalf("导入失败: %v", err)
		}
		if count != 1 {
			t.Errorf("导入数 = %d, 期望 1", count)
		}
		if _, err := m.GetByName("入库单"); err != nil {
			t.Error("导入后应能按名称查到模板")
		}
	})

	t.Run("名称冲突整体拒绝", func(t *testing.T) {
		m := newTestTemplateManager(t)
		if _, err := m.Add(validTemplate()); err != nil {
			t.Fatalf("预置模板失败: %v", err)
		}

		fresh := validTemplate()
		fresh.Name = "新模板"
		colliding := validTemplate()
		colliding.Name = "入库单" // 与已有模板重名
		data, _ := MarshalBundle([]Template{fresh, colliding})

		if _, err := m.ImportBundle(data); err == nil {
			t.Fatal("任何一个重名都应拒绝整个导入")
		}
		// 连不冲突的那个也不应被导入
		if _, err := m.GetByName("新模板"); err == nil {
			t.Error("导入被拒绝后不应有部分应用")
		}
	})

	t.Run("包内部重名也拒绝", func(t *testing.T) {
		m := newTestTemplateManager(t)

		a := validTemplate()
		a.Name = "同名"
		b := validTemplate()
		b.Name = "同名"
		data, _ := MarshalBundle([]Template{a, b})

		if _, err := m.ImportBundle(data); err == nil {
			t.Error("导入包内部重名应被拒绝")
		}
	})

	t.Run("ID 撞车重新生成", func(t *testing.T) {
		m := newTestTemplateManager(t)
		existing, _ := m.Add(validTemplate())

		incoming := validTemplate()
		incoming.ID = existing.ID
		incoming.Name = "另一个模板"
		data, _ := MarshalBundle([]Template{incoming})

		if _, err := m.ImportBundle(data); err != nil {
			t.Fatalf("导入失败: %v", err)
		}
		imported, err := m.GetByName("另一个模板")
		if err != nil {
			t.Fatal("导入的模板应该存在")
		}
		if imported.ID == existing.ID {
			t.Error("ID 撞车时应重新生成")
		}
	})

	t.Run("非 JSON 输入", func(t *testing.T) {
		m := newTestTemplateManager(t)
		if _, err := m.ImportBundle([]byte("不是 JSON")); err == nil {
			t.Error("非 JSON 输入应该报错")
		}
	})

	t.Run("缺少 templates 字段", func(t *testing.T) {
		m := newTestTemplateManager(t)
		if _, err := m.ImportBundle([]byte(`{"exportDate": "2024-01-15"}`)); err == nil {
			t.Error("缺少 templates 字段应该报错")
		}
	})

	t.Run("templates 不是列表", func(t *testing.T) {
		m := newTestTemplateManager(t)
		if _, err := m.ImportBundle([]byte(`{"templates": {"a": 1}}`)); err == nil {
			t.Error("templates 不是列表应该报错")
		}
	})

	t.Run("导入无效模板被拒绝", func(t *testing.T) {
		m := newTestTemplateManager(t)

		invalid := validTemplate()
		invalid.Fields = nil
		bundle := ExportBundle{Templates: []Template{invalid}}
		data, _ := json.Marshal(bundle)

		if _, err := m.ImportBundle(data); err == nil {
			t.Error("无字段的模板应该被拒绝")
		}
	})
}

func TestImportBundleRoundTrip(t *testing.T) {
	src := newTestTemplateManager(t)
	tmpl := validTemplate()
	tmpl.Description = "往返测试"
	added, _ := src.Add(tmpl)

	data, err := MarshalBundle(src.List())
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	dst := newTestTemplateManager(t)
	if _, err := dst.ImportBundle(data); err != nil {
		t.Fatalf("导入失败: %v", err)
	}

	got, err := dst.GetByName(added.Name)
	if err != nil {
		t.Fatal("导入后查不到模板")
	}
	if got.Description != "往返测试" {
		t.Errorf("描述丢失: %q", got.Description)
	}
	if !strings.EqualFold(got.Name, added.Name) {
		t.Errorf("名称不符: %q", got.Name)
	}
}
