package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YuChen-Hu/scanform-cli/internal/testutil"
)

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.CreateTempFile(t, dir, "templates.json", `{"version":1}`)

	id, err := CreateBackup(docPath)
	if err != nil {
		t.Fatalf("创建备份失败: %v", err)
	}
	if id == "" {
		t.Fatal("备份 ID 不应为空")
	}

	backupPath := filepath.Join(dir, BackupDirName, id+".json")
	testutil.AssertFileContent(t, backupPath, `{"version":1}`)
}

func TestCreateBackupMissingSource(t *testing.T) {
	dir := t.TempDir()

	id, err := CreateBackup(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("源文件缺失不应报错: %v", err)
	}
	if id != "" {
		t.Error("源文件缺失时不应产生备份 ID")
	}
}

func TestCreateAutoBackupPrefix(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.CreateTempFile(t, dir, "dataRecords.json", `{}`)

	id, err := CreateAutoBackup(docPath)
	if err != nil {
		t.Fatalf("创建自动备份失败: %v", err)
	}
	if id[:len(AutoBackupPrefix)] != AutoBackupPrefix {
		t.Errorf("自动备份 ID 应以 %s 开头: %s", AutoBackupPrefix, id)
	}
}

func TestListBackups(t *testing.T) {
	dir := t.TempDir()

	t.Run("目录不存在", func(t *testing.T) {
		backups, err := ListBackups(dir)
		if err != nil {
			t.Fatalf("备份目录不存在不应报错: %v", err)
		}
		if len(backups) != 0 {
			t.Error("应返回空列表")
		}
	})

	docPath := testutil.CreateTempFile(t, dir, "templates.json", `{}`)
	manualID, _ := CreateBackup(docPath)
	autoID, _ := CreateAutoBackup(docPath)

	backups, err := ListBackups(dir)
	if err != nil {
		t.Fatalf("列出备份失败: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("备份数 = %d, 期望 2", len(backups))
	}

	byID := make(map[string]Info)
	for _, b := range backups {
		byID[b.ID] = b
	}

	manual, ok := byID[manualID]
	if !ok {
		t.Fatalf("列表中找不到手动备份 %s", manualID)
	}
	if manual.Auto || manual.Document != "templates" {
		t.Errorf("手动备份信息不符: %+v", manual)
	}

	auto, ok := byID[autoID]
	if !ok {
		t.Fatalf("列表中找不到自动备份 %s", autoID)
	}
	if !auto.Auto || auto.Document != "templates" {
		t.Errorf("自动备份信息不符: %+v", auto)
	}
}

func TestCleanupRetainsNewest(t *testing.T) {
	dir := t.TempDir()
	backupDir := filepath.Join(dir, BackupDirName)
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		t.Fatalf("创建备份目录失败: %v", err)
	}

	// 预置超过保留上限的旧自动备份（时间戳内嵌在文件名里）
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < MaxAutoBackups+3; i++ {
		ts := base.Add(time.Duration(i) * time.Minute).Format("20060102_150405")
		name := fmt.Sprintf("%sbackup_templates_%s.json", AutoBackupPrefix, ts)
		if err := os.WriteFile(filepath.Join(backupDir, name), []byte("{}"), 0600); err != nil {
			t.Fatalf("预置备份失败: %v", err)
		}
	}

	// 再触发一次自动备份，应把总数裁剪到上限
	docPath := testutil.CreateTempFile(t, dir, "templates.json", `{}`)
	if _, err := CreateAutoBackup(docPath); err != nil {
		t.Fatalf("创建自动备份失败: %v", err)
	}

	backups, err := ListBackups(dir)
	if err != nil {
		t.Fatalf("列出备份失败: %v", err)
	}

	autoCount := 0
	for _, b := range backups {
		if b.Auto {
			autoCount++
		}
	}
	if autoCount != MaxAutoBackups {
		t.Errorf("自动备份数 = %d, 期望 %d", autoCount, MaxAutoBackups)
	}

	// 最旧的应该被清掉
	oldest := fmt.Sprintf("%sbackup_templates_%s", AutoBackupPrefix, base.Format("20060102_150405"))
	for _, b := range backups {
		if b.ID == oldest {
			t.Error("最旧的备份应该被清理")
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.CreateTempFile(t, dir, "templates.json", `{"v":"old"}`)

	id, err := CreateBackup(docPath)
	if err != nil {
		t.Fatalf("创建备份失败: %v", err)
	}

	// 改掉文档再恢复
	if err := os.WriteFile(docPath, []byte(`{"v":"changed"}`), 0600); err != nil {
		t.Fatalf("改写文档失败: %v", err)
	}

	restored, err := RestoreBackup(dir, id)
	if err != nil {
		t.Fatalf("恢复失败: %v", err)
	}
	if restored != docPath {
		t.Errorf("恢复目标 = %s, 期望 %s", restored, docPath)
	}
	testutil.AssertFileContent(t, docPath, `{"v":"old"}`)
}

func TestRestoreBackupMissing(t *testing.T) {
	dir := t.TempDir()
	if _, err := RestoreBackup(dir, "backup_templates_20240101_000000"); err == nil {
		t.Error("恢复不存在的备份应该报错")
	}
}
