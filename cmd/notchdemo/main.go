// Command notchdemo renders coupon panels decorated with the notch library.
//
//	notchdemo render --left circle --right circle --output coupon.png
//	notchdemo render --config coupon.yaml --format svg --output coupon.svg
//	notchdemo layout --width 320 --height 120 --top triangle
package main

import (
	"fmt"
	"os"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
