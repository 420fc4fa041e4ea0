package portable

import (
	"os"
	"path/filepath"
	"testing"
)

func stubExecutable(t *testing.T, path string) {
	t.Helper()
	original := portableExecutableFunc
	portableExecutableFunc = func() (string, error) { return path, nil }
	t.Cleanup(func() { portableExecutableFunc = original })
}

func TestIsPortableMode(t *testing.T) {
	dir := t.TempDir()
	execPath := filepath.Join(dir, "scanform")
	stubExecutable(t, execPath)

	if IsPortableMode() {
		t.Error("没有 portable.ini 时不应是便携版")
	}

	if err := os.WriteFile(filepath.Join(dir, "portable.ini"), nil, 0644); err != nil {
		t.Fatalf("创建 portable.ini 失败: %v", err)
	}
	if !IsPortableMode() {
		t.Error("存在 portable.ini 时应是便携版")
	}
}

func TestIsPortableModeDirIgnored(t *testing.T) {
	dir := t.TempDir()
	stubExecutable(t, filepath.Join(dir, "scanform"))

	// portable.ini 是目录时不算
	if err := os.Mkdir(filepath.Join(dir, "portable.ini"), 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if IsPortableMode() {
		t.Error("portable.ini 为目录时不应是便携版")
	}
}

func TestGetPortableDataDir(t *testing.T) {
	dir := t.TempDir()
	stubExecutable(t, filepath.Join(dir, "scanform"))

	got, err := GetPortableDataDir()
	if err != nil {
		t.Fatalf("获取便携版数据目录失败: %v", err)
	}
	if got != filepath.Join(dir, ".scanform") {
		t.Errorf("数据目录 = %s", got)
	}
}
