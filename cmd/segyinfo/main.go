// Command segyinfo prints a SEG-Y file's text header and a one-line
// summary of its binary header and trace count. It runs single-rank
// (comm.NewLocal) and exists to exercise the file package end-to-end, not
// as a pipeline or flow front-end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/exseisdat/segyio/comm"
	"github.com/exseisdat/segyio/file"
	"github.com/exseisdat/segyio/telemetry"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "segyinfo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("segyinfo", flag.ContinueOnError)
	showText := fs.Bool("text", true, "print the 3200-byte text header")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: segyinfo [-text=false] <path>")
	}

	log, err := telemetry.NewDevelopment()
	if err != nil {
		return err
	}

	ctx := context.Background()
	c := comm.NewLocal()

	in, err := file.OpenInput(ctx, c, fs.Arg(0))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			log.Warnw("close failed", "path", fs.Arg(0), "error", cerr)
		}
	}()

	ns, err := in.ReadSamplesPerTrace()
	if err != nil {
		return err
	}

	nt, err := in.ReadNumberOfTraces()
	if err != nil {
		return err
	}

	interval, err := in.ReadSampleInterval()
	if err != nil {
		return err
	}

	if *showText {
		text, err := in.ReadText()
		if err != nil {
			return err
		}

		fmt.Println(text)
		fmt.Println()
	}

	fmt.Printf("%s: %d traces, %d samples/trace, %.6fs sample interval\n", fs.Arg(0), nt, ns, interval)

	return nil
}
