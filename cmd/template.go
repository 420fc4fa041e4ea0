package cmd

import (
	"github.com/spf13/cobra"
)

// templateCmd 模板管理的父命令
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "管理数据采集模板",
	Long:  `创建、查看、编辑、删除模板，以及模板的导出和导入。`,
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
