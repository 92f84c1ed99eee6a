package main

import (
	"fmt"
	"os"

	"github.com/ostacklab/heatup/cmd"
)

func main() {
	err := cmd.NewRootCommand().Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
