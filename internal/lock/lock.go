package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/YuChen-Hu/scanform-cli/internal/portable"
)

const (
	// LockFileName 锁文件名
	LockFileName = ".scanform.lock"
	// StaleLockTimeout 超过该时长的锁视为失效
	StaleLockTimeout = 5 * time.Minute
)

// Lock 基于文件的数据目录锁
// 只用于避免两个 scanform 进程同时写同一个数据目录；
// 文档级的并发语义仍然是 last-write-wins
type Lock struct {
	lockPath string
	acquired bool
}

// NewLock 为指定数据目录创建锁
func NewLock(dataDir string) *Lock {
	return &Lock{
		lockPath: filepath.Join(dataDir, LockFileName),
	}
}

// TryAcquire 尝试获取锁
// 返回 true 表示获取成功，false 表示另一个实例正在运行
func (l *Lock) TryAcquire() (bool, error) {
	// 便携版模式跳过锁
	if portable.IsPortableMode() {
		l.acquired = true
		return true, nil
	}

	if info, err := os.Stat(l.lockPath); err == nil {
		if time.Since(info.ModTime()) > StaleLockTimeout {
			// 失效锁，直接清除
			os.Remove(l.lockPath)
		} else {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(l.lockPath), 0755); err != nil {
		return false, fmt.Errorf("创建数据目录失败: %w", err)
	}

	pid := os.Getpid()
	if err := os.WriteFile(l.lockPath, []byte(strconv.Itoa(pid)), 0600); err != nil {
		return false, fmt.Errorf("创建锁文件失败: %w", err)
	}

	l.acquired = true
	return true, nil
}

// Release 释放锁
func (l *Lock) Release() error {
	if !l.acquired {
		return nil
	}

	l.acquired = false
	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除锁文件失败: %w", err)
	}

	return nil
}

// IsAcquired 当前进程是否持有锁
func (l *Lock) IsAcquired() bool {
	return l.acquired
}
