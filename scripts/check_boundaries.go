package main

import (
	"fmt"
	"os"

	"artjury/internal/platform/boundaries"
)

func main() {
	violations, err := boundaries.Check(".", boundaries.DefaultRules("artjury"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(violations) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	fmt.Println("boundary violations found:")
	for _, v := range violations {
		fmt.Printf("- %s\n", v)
	}
	os.Exit(1)
}
