package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/baseconv"
	"github.com/wippyai/baseconv/digit"
)

// config carries environment defaults for the flags.
type config struct {
	InputBase  int `env:"BASECONV_INPUT_BASE" envDefault:"10"`
	OutputBase int `env:"BASECONV_OUTPUT_BASE" envDefault:"10"`
	MaxDepth   int `env:"BASECONV_MAX_DEPTH" envDefault:"10"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parse env: %v\n", err)
		os.Exit(1)
	}

	var (
		number      = flag.String("n", "", "The number to convert, else stdin is used")
		inputBase   = flag.Int("i", cfg.InputBase, "The input base")
		outputBase  = flag.Int("o", cfg.OutputBase, "The output base")
		maxDepth    = flag.Int("d", cfg.MaxDepth, "The maximum fractional digits")
		noRecurring = flag.Bool("no-recurring", false, "Emit literal digits instead of [..] notation")
		tuple       = flag.Bool("tuple", false, "Print the structured digit tuple instead of a string")
		interactive = flag.Bool("t", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		baseconv.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*inputBase, *outputBase, *maxDepth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*number, *inputBase, *outputBase, *maxDepth, !*noRecurring, *tuple); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(number string, inputBase, outputBase, maxDepth int, recurring, tuple bool) error {
	if number == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		number = strings.TrimSpace(string(data))
	}

	c := baseconv.New(inputBase, outputBase)
	c.MaxDepth = maxDepth
	c.Recurring = recurring

	seq, err := c.Convert(number)
	if err != nil {
		return err
	}

	if tuple {
		fmt.Println(formatTuple(seq))
	} else {
		fmt.Println(seq.String())
	}
	return nil
}

// formatTuple prints a sequence the structured way, digit values as
// numbers and markers quoted: (4, 0, 8, 0, '.', 5).
func formatTuple(seq digit.Sequence) string {
	parts := make([]string, len(seq))
	for i, it := range seq {
		switch it {
		case digit.RadixPoint:
			parts[i] = "'.'"
		case digit.RepeatStart:
			parts[i] = "'['"
		case digit.RepeatEnd:
			parts[i] = "']'"
		default:
			parts[i] = fmt.Sprintf("%d", int(it))
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
