package main

import (
	"fmt"
	"os"

	"expense_report/internal"
)

func main() {
	if err := internal.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "day01: %v\n", err)
		os.Exit(1)
	}
}
