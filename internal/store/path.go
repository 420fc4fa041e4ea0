package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/YuChen-Hu/scanform-cli/internal/portable"
)

// GetDataDir 获取数据目录
// 优先级：便携版目录 > 用户主目录下的 .scanform
func GetDataDir() (string, error) {
	if portable.IsPortableMode() {
		dataDir, err := portable.GetPortableDataDir()
		if err != nil {
			return "", fmt.Errorf("获取便携版数据目录失败: %w", err)
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("获取用户主目录失败: %w", err)
	}

	return filepath.Join(home, ".scanform"), nil
}

// GetTemplatesPath 获取模板文档路径
func GetTemplatesPath(dataDir string) string {
	return filepath.Join(dataDir, "templates.json")
}

// GetRecordsPath 获取记录文档路径
func GetRecordsPath(dataDir string) string {
	return filepath.Join(dataDir, "dataRecords.json")
}

// GetScanLogPath 获取旧版扫描日志路径
func GetScanLogPath(dataDir string) string {
	return filepath.Join(dataDir, "scannedData.json")
}

// GetScanCSVPath 获取旧版扫描 CSV 日志路径
func GetScanCSVPath(dataDir string) string {
	return filepath.Join(dataDir, "scanned_barcodes.csv")
}
