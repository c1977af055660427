package main

import (
	"context"
	"fmt"
	"os"
	"restate-gateway/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.DefaultFactory)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
