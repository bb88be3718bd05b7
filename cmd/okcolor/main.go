package main

import (
	"fmt"
	"os"
)

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	err = newRootCommand().Execute()
}
