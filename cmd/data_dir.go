package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/portable"
	"github.com/YuChen-Hu/scanform-cli/internal/settings"
	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var dataDirResetFlag bool

var dataDirCmd = &cobra.Command{
	Use:   "data-dir [新目录]",
	Short: "查看或设置数据目录",
	Long: `查看当前数据目录，或把数据目录切换到指定路径。

切换只影响后续读写，不会迁移已有数据文件，
需要迁移时请手动复制 templates.json 和 dataRecords.json。`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dataDirResetFlag {
			return runDataDirReset()
		}
		if len(args) == 0 {
			return runDataDirShow()
		}
		return runDataDirSet(args[0])
	},
}

func init() {
	rootCmd.AddCommand(dataDirCmd)
	dataDirCmd.Flags().BoolVar(&dataDirResetFlag, "reset", false, "恢复默认数据目录")
}

func runDataDirShow() error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}

	fmt.Printf("数据目录: %s\n", dir)
	if portable.IsPortableMode() {
		fmt.Println("模式: 便携版（portable.ini）")
	}

	for _, doc := range []string{"templates.json", "dataRecords.json", "scannedData.json"} {
		path := filepath.Join(dir, doc)
		if info, err := os.Stat(path); err == nil {
			fmt.Printf("  %-20s %.1f KB\n", doc, float64(info.Size())/1024)
		} else {
			fmt.Printf("  %-20s (不存在)\n", doc)
		}
	}

	return nil
}

func runDataDirSet(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("解析目录路径失败: %w", err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return fmt.Errorf("创建数据目录失败: %w", err)
	}

	sm, err := settings.NewManager()
	if err != nil {
		return fmt.Errorf("加载设置失败: %w", err)
	}

	if err := sm.SetDataDir(abs); err != nil {
		return err
	}

	color.Green("✓ 数据目录已设置为: %s", abs)
	color.Yellow("⚠ 已有数据不会自动迁移")
	return nil
}

func runDataDirReset() error {
	sm, err := settings.NewManager()
	if err != nil {
		return fmt.Errorf("加载设置失败: %w", err)
	}

	if err := sm.SetDataDir(""); err != nil {
		return err
	}

	dir, err := store.GetDataDir()
	if err != nil {
		return err
	}

	color.Green("✓ 已恢复默认数据目录: %s", dir)
	return nil
}
