package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/caio/go-brokentoys/cmd/brokentoys/app"
)

func main() {
	command := app.NewBrokenToysCommand()
	err := command.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
