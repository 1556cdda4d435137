// auxv dumps the auxiliary vector of its own process, one entry per line, as
// a way to eyeball what the kernel actually passed and to compare the
// available read mechanisms against each other.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/elwinar/auxv"
	"github.com/elwinar/auxv/pkg/conf"
	"github.com/elwinar/auxv/pkg/environx"
	"github.com/inconshreveable/log15"
)

var Version = "N/C"

func main() {
	var cfg struct {
		source       string
		printVersion bool
	}

	fs := flag.NewFlagSet("auxv-"+Version, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage of auxv: auxv [options]")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.source, "source", "procfs", "where to read the vector from (procfs or stack)")
	fs.BoolVar(&cfg.printVersion, "version", false, "print the version of auxv")
	fs.String("conf", "/etc/auxv.conf", "configuration file to load")
	conf.Parse(fs, "conf")

	if cfg.printVersion {
		fmt.Println("auxv", Version)
		return
	}

	logger := log15.New()
	logger.SetHandler(log15.StreamHandler(os.Stderr, log15.LogfmtFormat()))

	err := dump(cfg.source)
	if err != nil {
		logger.Crit("dumping auxiliary vector", "source", cfg.source, "err", err)
		os.Exit(1)
	}
}

func dump(source string) error {
	switch source {
	case "procfs":
		it, err := auxv.IterateSelf()
		if err != nil {
			return err
		}
		for it.Next() {
			printPair(it.Pair())
		}
		return it.Err()

	case "stack":
		it, err := auxv.Stack(environx.Address())
		if err != nil {
			return err
		}
		for it.Next() {
			printPair(it.Pair())
		}
		return nil

	default:
		return fmt.Errorf("unknown source %q", source)
	}
}

func printPair(p auxv.Pair) {
	fmt.Printf("%d\t%#x\n", p.Type, uint64(p.Value))
}
