package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileExists 检查文件是否存在
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteJSONFile 写入 JSON 文件（原子方式）
func WriteJSONFile(path string, data interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化 JSON 失败: %w", err)
	}

	return AtomicWriteFile(path, jsonData, perm)
}

// ReadJSONFile 读取 JSON 文件
func ReadJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("解析 JSON 失败: %w", err)
	}

	return nil
}

// AtomicWriteFile 原子写入文件：先写临时文件再重命名，避免写到一半留下损坏文件
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, perm); err != nil {
		return fmt.Errorf("写入临时文件失败: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("重命名临时文件失败: %w", err)
	}

	return nil
}

// BackupFile 备份文件到同目录的 .backup 副本
func BackupFile(path string) error {
	if !FileExists(path) {
		return nil // 原文件不存在不算错误
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取原文件失败: %w", err)
	}

	if err := os.WriteFile(path+".backup", data, 0644); err != nil {
		return fmt.Errorf("创建备份失败: %w", err)
	}

	return nil
}
