package cli

import (
	"flag"
	"fmt"
	"os"
)

// Config holds the parsed CLI arguments.
type Config struct {
	Input     string
	To        string
	Modern    bool
	Precision int
	Random    string
	Serve     string
}

// Parse parses CLI arguments and returns a validated Config.
func Parse() (Config, error) {
	input := flag.String("in", "", "Color string to parse (e.g. \"rgb(255 0 0)\", \"#ff0000\", \"red\")")
	to := flag.String("to", "hex", "Output format or space (e.g. hex, rgb, hsl, oklch, srgb)")
	modern := flag.Bool("modern", false, "Use modern space-separated syntax for rgb/hsl output")
	precision := flag.Int("precision", 0, "Decimal places for serialized components (0 = per-format default)")
	random := flag.String("random", "", "Generate a random color in the given format instead of converting")
	serve := flag.String("serve", "", "Run the HTTP API on the given address (e.g. :8080) instead of converting")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: csspectrum [options]\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n  csspectrum --in=\"rgb(255 87 51)\" --to=oklch\n  csspectrum --random=hsl\n  csspectrum --serve=:8080\n")
	}

	flag.Parse()

	if *serve == "" && *random == "" && *input == "" {
		return Config{}, fmt.Errorf("one of --in, --random, or --serve is required")
	}
	if *precision < 0 {
		return Config{}, fmt.Errorf("--precision must be >= 0, got %d", *precision)
	}

	return Config{
		Input:     *input,
		To:        *to,
		Modern:    *modern,
		Precision: *precision,
		Random:    *random,
		Serve:     *serve,
	}, nil
}
