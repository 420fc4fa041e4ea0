package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/YuChen-Hu/scanform-cli/internal/utils"
)

// ScanCSVHeader 旧版扫描 CSV 日志的表头
const ScanCSVHeader = "ID,Data,Type,Timestamp"

// ScanLog 旧版快速扫描日志
// 同时维护 scannedData.json（JSON 数组）和 scanned_barcodes.csv（逗号分隔日志），
// 这是早期扫描界面使用的简化格式，保留以便兼容
type ScanLog struct {
	jsonPath string
	csvPath  string
}

// NewScanLog 创建扫描日志管理器
func NewScanLog(dataDir string) *ScanLog {
	return &ScanLog{
		jsonPath: GetScanLogPath(dataDir),
		csvPath:  GetScanCSVPath(dataDir),
	}
}

// List 列出所有扫描条目；文件缺失或损坏按空处理
func (s *ScanLog) List() ([]ScannedItem, error) {
	if !utils.FileExists(s.jsonPath) {
		return []ScannedItem{}, nil
	}

	data, err := os.ReadFile(s.jsonPath)
	if err != nil {
		return nil, fmt.Errorf("读取扫描日志失败: %w", err)
	}

	var items []ScannedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []ScannedItem{}, nil
	}

	return items, nil
}

// Append 追加一条扫描记录，同时写入 JSON 日志和 CSV 日志
func (s *ScanLog) Append(data, scanType string) (*ScannedItem, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}

	item := ScannedItem{
		Data:      data,
		Type:      scanType,
		Timestamp: time.Now().UnixMilli(),
	}
	items = append(items, item)

	jsonData, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("序列化扫描日志失败: %w", err)
	}
	if err := utils.AtomicWriteFile(s.jsonPath, jsonData, 0600); err != nil {
		return nil, err
	}

	if err := s.writeCSV(items); err != nil {
		return nil, err
	}

	return &item, nil
}

// writeCSV 以旧版 CSV 格式整体重写扫描日志
// 格式固定为 ID,Data,Type,Timestamp，ID 为 1 起始的行号
func (s *ScanLog) writeCSV(items []ScannedItem) error {
	var b strings.Builder
	b.WriteString(ScanCSVHeader + "\n")
	for i, item := range items {
		b.WriteString(fmt.Sprintf("%d,%s,%s,%d\n", i+1, item.Data, item.Type, item.Timestamp))
	}

	return utils.AtomicWriteFile(s.csvPath, []byte(b.String()), 0600)
}

// Clear 清空扫描日志（两个文件都删除）
func (s *ScanLog) Clear() error {
	for _, path := range []string{s.jsonPath, s.csvPath} {
		if !utils.FileExists(path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("删除扫描日志失败: %w", err)
		}
	}
	return nil
}
