package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const usageGuide = `# Cellar

Cellar stores JSON values behind one client interface with swappable
storage drivers.

## Drivers

| Driver | Storage | Eviction |
|--------|---------|----------|
| mem    | process memory | none |
| file   | one file per key | none |
| lru    | process memory | least recently used |
| tiered | filesystem + LRU read cache | cache only |
| redis  | Redis server | optional TTL |

## Serving a store

	cellar serve --driver tiered --path /var/lib/cellar --capacity 4096

Clients speak a single-verb JSON envelope on PUT /command:

	{"command": "SET", "k": "name", "v": "ImNlbGxhciI="}

Supported commands: GET, SET, SETNX, DEL, ADD, DEC. Values are JSON,
base64-encoded on the wire. Operation errors come back in the envelope's
err field; /healthz and /metrics are served alongside.

## Embedding

	kv := cellar.LRU(1024)
	err := kv.Set(ctx, "name", "cellar")
`

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the usage guide in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		)
		if err != nil {
			return err
		}

		out, err := r.Render(usageGuide)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
