package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "管理数据备份",
	Long: `管理模板和记录文件的备份。

每次写入数据文件前会自动创建备份（auto_ 前缀，最多保留 5 份），
也可以用 'backup create' 手动备份（最多保留 10 份）。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupList()
	},
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "手动创建备份",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupCreate()
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有备份",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupList()
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <备份 ID>",
	Short: "从备份恢复",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupRestore(args[0])
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

func runBackupCreate() error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}

	created := 0
	for _, doc := range []string{"templates.json", "dataRecords.json"} {
		id, err := backup.CreateBackup(filepath.Join(dir, doc))
		if err != nil {
			return fmt.Errorf("备份 %s 失败: %w", doc, err)
		}
		if id == "" {
			continue
		}
		fmt.Printf("  ✓ %s\n", id)
		created++
	}

	if created == 0 {
		color.Yellow("没有可备份的数据文件")
		return nil
	}

	color.Green("✓ 备份完成，共 %d 个文件", created)
	return nil
}

func runBackupList() error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}

	backups, err := backup.ListBackups(dir)
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		color.Yellow("暂无备份")
		return nil
	}

	color.Cyan("=== 备份 (%d) ===", len(backups))
	for _, b := range backups {
		kind := "手动"
		if b.Auto {
			kind = "自动"
		}
		fmt.Printf("  %-48s %-12s %s  %.1f KB\n",
			b.ID, b.Document+" ("+kind+")",
			b.Timestamp.Local().Format("2006-01-02 15:04:05"),
			float64(b.Size)/1024)
	}

	return nil
}

func runBackupRestore(id string) error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("恢复备份 %s 会覆盖当前数据文件，继续吗？", id)) {
		fmt.Println("已取消")
		return nil
	}

	var docPath string
	err = withDataLock(func() error {
		docPath, err = backup.RestoreBackup(dir, id)
		return err
	})
	if err != nil {
		return err
	}

	color.Green("✓ 已恢复: %s", docPath)
	return nil
}
