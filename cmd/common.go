package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/YuChen-Hu/scanform-cli/internal/lock"
	"github.com/YuChen-Hu/scanform-cli/internal/settings"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

// dataDirFlag --dir 全局参数
var dataDirFlag string

// resolveDataDir 解析实际使用的数据目录
// 优先级：--dir 参数 > 设置文件中的自定义目录 > 默认目录（含便携版）
func resolveDataDir() (string, error) {
	if dataDirFlag != "" {
		return dataDirFlag, nil
	}

	if sm, err := settings.NewManager(); err == nil {
		if dir := sm.GetDataDir(); dir != "" {
			return dir, nil
		}
	}

	return store.GetDataDir()
}

// getTemplateManager 获取模板管理器
func getTemplateManager() (*store.TemplateManager, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return store.NewTemplateManagerWithDir(dir)
}

// getRecordManager 获取记录管理器
func getRecordManager() (*store.RecordManager, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return store.NewRecordManagerWithDir(dir)
}

// withDataLock 在持有数据目录锁的情况下执行写操作
func withDataLock(fn func() error) error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}

	l := lock.NewLock(dir)
	acquired, err := l.TryAcquire()
	if err != nil {
		return fmt.Errorf("获取数据目录锁失败: %w", err)
	}
	if !acquired {
		return fmt.Errorf("另一个 scanform 实例正在运行")
	}
	defer l.Release()

	return fn()
}

// promptInput 读取一行用户输入
func promptInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm 读取 y/n 确认，默认为否
func confirm(prompt string) bool {
	answer, err := promptInput(prompt + " [y/N]: ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// formatMillis 把毫秒时间戳格式化为本地时间
func formatMillis(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

// defaultFileGroup 采集时的默认文件分组名
func defaultFileGroup() string {
	if sm, err := settings.NewManager(); err == nil {
		if name := sm.GetDefaultFileName(); name != "" {
			return name
		}
	}
	return store.DefaultFileName
}
