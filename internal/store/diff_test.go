package store

import (
	"strings"
	"testing"
)

func TestTemplateDiff(t *testing.T) {
	oldTmpl := validTemplate()
	oldTmpl.ID = "t1"

	newTmpl := oldTmpl
	newTmpl.Name = "出库单"

	diff, err := TemplateDiff(&oldTmpl, &newTmpl)
	if err != nil {
		t.Fatalf("生成 diff 失败: %v", err)
	}

	if !strings.Contains(diff, "入库单 (当前)") || !strings.Contains(diff, "出库单 (修改后)") {
		t.Errorf("diff 应包含前后标签:\n%s", diff)
	}
	if !strings.Contains(diff, "@@") {
		t.Errorf("有变更时 diff 应包含 hunk 标记:\n%s", diff)
	}
}

func TestTemplateDiffNoChanges(t *testing.T) {
	tmpl := validTemplate()
	tmpl.ID = "t1"

	diff, err := TemplateDiff(&tmpl, &tmpl)
	if err != nil {
		t.Fatalf("生成 diff 失败: %v", err)
	}
	if diff != "No differences found." {
		t.Errorf("无变更时 diff = %q", diff)
	}
}

func TestFormatDiffForCLI(t *testing.T) {
	diff := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new"
	out := FormatDiffForCLI(diff)

	if !strings.Contains(out, "\033[31m-old\033[0m") {
		t.Error("删除行应为红色")
	}
	if !strings.Contains(out, "\033[32m+new\033[0m") {
		t.Error("新增行应为绿色")
	}
	if !strings.Contains(out, "\033[36m@@ -1 +1 @@\033[0m") {
		t.Error("hunk 行应为青色")
	}
}
