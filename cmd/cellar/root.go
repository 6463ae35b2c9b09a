package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cellar",
	Short: "Cellar is a key/value cache store with swappable drivers",
	Long:  `Cellar stores JSON values behind a uniform client interface, backed by memory, the filesystem, an LRU cache, or Redis, and can serve the store over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
