//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of wolfram-ca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/ca` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Use ./cmd/ca-render for image output or ./cmd/ca-term for a terminal view.")
	os.Exit(2)
}
