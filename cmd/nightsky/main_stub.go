//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of nightsky requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/nightsky` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless run, try `go run ./cmd/sky-sweep`.")
	os.Exit(2)
}
