// hwcap prints the hardware-capability bitmasks of the machine, using the
// best mechanism available.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/elwinar/auxv"
)

func main() {
	for _, t := range []auxv.Type{auxv.TypeHwCap, auxv.TypeHwCap2} {
		v, err := auxv.Get(t)
		if errors.Is(err, auxv.ErrNotFound) {
			// HWCAP2 only exists on a few architectures.
			continue
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("%d\t%#x\n", t, uint64(v))
	}
}
