package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuChen-Hu/scanform-cli/internal/store"
)

var scanClearYes bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "快速扫描（无模板）",
	Long: `不绑定模板的快速扫描模式：从标准输入逐行读取条码内容，
追加到扫描日志（scannedData.json + scanned_barcodes.csv）。
结构化采集请使用 'scanform collect <模板>'。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan()
	},
}

var scanListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出扫描日志",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScanList()
	},
}

var scanClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "清空扫描日志",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScanClear()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.AddCommand(scanListCmd)
	scanCmd.AddCommand(scanClearCmd)
	scanClearCmd.Flags().BoolVarP(&scanClearYes, "yes", "y", false, "跳过确认")
}

func runScan() error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}
	log := store.NewScanLog(dir)

	fmt.Println("快速扫描模式：每行一条，空行跳过，Ctrl+D 结束")

	count := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		err := withDataLock(func() error {
			_, err := log.Append(line, "keyboard")
			return err
		})
		if err != nil {
			return fmt.Errorf("写入扫描日志失败: %w", err)
		}

		count++
		fmt.Printf("  ✓ #%d %s\n", count, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("读取输入失败: %w", err)
	}

	color.Green("✓ 扫描结束，共 %d 条", count)
	return nil
}

func runScanList() error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}

	items, err := store.NewScanLog(dir).List()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		color.Yellow("扫描日志为空")
		return nil
	}

	color.Cyan("=== 扫描日志 (%d) ===", len(items))
	for i, item := range items {
		fmt.Printf("  %3d  %-40s %-10s %s\n",
			i+1, item.Data, item.Type, formatMillis(item.Timestamp))
	}

	return nil
}

func runScanClear() error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}

	if !scanClearYes && !confirm("确定要清空扫描日志吗？") {
		fmt.Println("已取消")
		return nil
	}

	err = withDataLock(func() error {
		return store.NewScanLog(dir).Clear()
	})
	if err != nil {
		return err
	}

	color.Green("✓ 扫描日志已清空")
	return nil
}
