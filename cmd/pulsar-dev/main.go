// Command pulsar-dev is a manual harness for exercising spec.md §8's
// end-to-end scenarios in a live page: it builds an example to wasm,
// serves it, and rebuilds + reloads the browser on every source change.
// It is exercised by, not part of, the core runtime.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pulsarjs/pulsar/internal/devserver"
)

func main() {
	example := flag.String("example", "counter", "example directory under examples/ to serve")
	addr := flag.String("addr", "localhost:0", "address to listen on")
	flag.Parse()

	server := devserver.NewServer(*example, *addr)
	if err := server.Start(); err != nil {
		log.Fatalf("pulsar-dev: %v", err)
	}
	defer server.Stop()

	fmt.Printf("pulsar-dev: serving %q at %s (Ctrl+C to stop)\n", *example, server.URL())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("pulsar-dev: shutting down")
}
