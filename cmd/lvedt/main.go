// Command lvedt computes Euclidean distance fields of image masks.
//
//	lvedt transform --in mask.png --out dist.png --max 32
//	lvedt bands --in mask.png --out rings.png --width 8
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
