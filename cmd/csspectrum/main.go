package main

import (
	"fmt"
	"os"

	"github.com/ganemedelabs/csspectrum"
	"github.com/ganemedelabs/csspectrum/internal/cli"
	"github.com/ganemedelabs/csspectrum/internal/server"
)

func main() {
	cfg, err := cli.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Serve != "" {
		fmt.Printf("Listening on %s\n", cfg.Serve)
		if err := server.ListenAndServe(cfg.Serve, csspectrum.Default); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Random != "" {
		out, err := csspectrum.Random(cfg.Random)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	c, err := csspectrum.From(cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := c.To(cfg.To, csspectrum.Options{Modern: cfg.Modern, Precision: cfg.Precision})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
