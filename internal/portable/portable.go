package portable

import (
	"os"
	"path/filepath"
)

var portableExecutableFunc = os.Executable

// IsPortableMode 检测是否为便携版模式
// 便携版模式：在程序所在目录下存在 portable.ini 文件
func IsPortableMode() bool {
	execPath, err := portableExecutableFunc()
	if err != nil {
		return false
	}

	portableFile := filepath.Join(filepath.Dir(execPath), "portable.ini")

	info, err := os.Stat(portableFile)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// GetPortableDataDir 获取便携版数据目录
// 便携版模式下，数据目录为程序所在目录下的 .scanform 子目录
func GetPortableDataDir() (string, error) {
	execPath, err := portableExecutableFunc()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(execPath), ".scanform"), nil
}
