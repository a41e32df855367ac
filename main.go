package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/imgconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "imgconv: %v\n", err)
		os.Exit(1)
	}
}
