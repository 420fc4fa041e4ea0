package main

import (
	"github.com/YuChen-Hu/scanform-cli/cmd"
)

func main() {
	cmd.Execute()
}
