package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxBackups 手动备份的最大保留数量
	MaxBackups = 10
	// MaxAutoBackups 自动备份的最大保留数量
	MaxAutoBackups = 5
	// BackupDirName 备份目录名
	BackupDirName = "backups"
	// AutoBackupPrefix 自动备份文件名前缀
	AutoBackupPrefix = "auto_"
)

// Info 单个备份文件的信息
type Info struct {
	ID        string
	Path      string
	Document  string // 备份来源文档的基础名（templates / dataRecords）
	Timestamp time.Time
	Size      int64
	Auto      bool
}

// CreateBackup 为指定文档创建手动备份
// 源文档不存在时返回空 ID，不算错误
func CreateBackup(docPath string) (string, error) {
	return createBackup(docPath, false)
}

// CreateAutoBackup 创建自动备份（由 Save 调用）
func CreateAutoBackup(docPath string) (string, error) {
	return createBackup(docPath, true)
}

func createBackup(docPath string, isAuto bool) (string, error) {
	if _, err := os.Stat(docPath); os.IsNotExist(err) {
		return "", nil
	}

	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	timestamp := time.Now().UTC().Format("20060102_150405")

	var backupID string
	if isAuto {
		backupID = fmt.Sprintf("%sbackup_%s_%s", AutoBackupPrefix, base, timestamp)
	} else {
		backupID = fmt.Sprintf("backup_%s_%s", base, timestamp)
	}

	backupDir := filepath.Join(filepath.Dir(docPath), BackupDirName)
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("创建备份目录失败: %w", err)
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return "", fmt.Errorf("读取源文档失败: %w", err)
	}

	backupPath := filepath.Join(backupDir, backupID+".json")
	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("写入备份文件失败: %w", err)
	}

	// 按来源文档分别清理，自动/手动各自有保留上限
	if isAuto {
		cleanupBackups(backupDir, AutoBackupPrefix+"backup_"+base+"_", MaxAutoBackups)
	} else {
		cleanupBackups(backupDir, "backup_"+base+"_", MaxBackups)
	}

	return backupID, nil
}

// cleanupBackups 删除超出保留数量的最旧备份；清理失败静默忽略
func cleanupBackups(backupDir, prefix string, retain int) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		names = append(names, name)
	}

	if len(names) <= retain {
		return
	}

	// 文件名内嵌时间戳，字典序即时间序
	sort.Strings(names)
	for _, name := range names[:len(names)-retain] {
		_ = os.Remove(filepath.Join(backupDir, name))
	}
}

// ListBackups 列出数据目录下的所有备份（新的在前）
func ListBackups(dataDir string) ([]Info, error) {
	backupDir := filepath.Join(dataDir, BackupDirName)
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("读取备份目录失败: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		id := strings.TrimSuffix(name, ".json")
		auto := strings.HasPrefix(id, AutoBackupPrefix)

		rest := strings.TrimPrefix(strings.TrimPrefix(id, AutoBackupPrefix), "backup_")
		// rest 形如 <document>_20060102_150405
		idx := strings.LastIndex(rest, "_")
		if idx < 0 {
			continue
		}
		idx = strings.LastIndex(rest[:idx], "_")
		if idx < 0 {
			continue
		}
		document := rest[:idx]
		ts, err := time.Parse("20060102_150405", rest[idx+1:])
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			ID:        id,
			Path:      filepath.Join(backupDir, name),
			Document:  document,
			Timestamp: ts,
			Size:      info.Size(),
			Auto:      auto,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// RestoreBackup 将指定备份恢复为对应的文档
func RestoreBackup(dataDir, backupID string) (string, error) {
	backups, err := ListBackups(dataDir)
	if err != nil {
		return "", err
	}

	for _, b := range backups {
		if b.ID != backupID {
			continue
		}

		data, err := os.ReadFile(b.Path)
		if err != nil {
			return "", fmt.Errorf("读取备份文件失败: %w", err)
		}

		docPath := filepath.Join(dataDir, b.Document+".json")
		if err := os.WriteFile(docPath, data, 0600); err != nil {
			return "", fmt.Errorf("恢复文档失败: %w", err)
		}

		return docPath, nil
	}

	return "", fmt.Errorf("备份不存在: %s", backupID)
}
