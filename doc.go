/*
Package cellar is a small key/value cache store with swappable storage
drivers and a typed JSON client on top.

It separates raw byte storage (ports.Driver: memory, file, lru, tiered,
redis) from the typed, concurrency-safe view applications use
(ports.Client: Get/Set/SetNX/Del/Add/Dec with JSON values). This Hexagonal
Architecture keeps the client semantics identical no matter where the bytes
live, and lets the same store be embedded in-process or served over HTTP.

# Key Features

  - Swappable drivers: memory, filesystem, LRU cache, tiered (file + LRU),
    and Redis, all behind one contract.
  - Typed client: values are JSON, counters are atomic within the process.
  - Remote access: an HTTP server (cellar serve) and a client implementing
    the same interface, so code doesn't care whether the store is local.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/cellar"
	)

	func main() {
		kv := cellar.LRU(1024)
		ctx := context.Background()

		if err := kv.Set(ctx, "name", "cellar"); err != nil {
			log.Fatal(err)
		}

		var name string
		if err := kv.Get(ctx, "name", &name); err != nil {
			log.Fatal(err)
		}
		log.Println(name)

		// Counters
		_ = kv.Set(ctx, "visits", 0)
		_ = kv.Add(ctx, "visits", 1)
	}
*/
package cellar
