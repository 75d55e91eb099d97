package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"

	inv2pdf "github.com/alnah/go-inv2pdf"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Printf("inv2pdf %s\n", Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := loadEnvConfig(os.Stderr)

	cfg, err := resolveSettings(flags, env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}

	svc := inv2pdf.New(
		inv2pdf.WithTimeout(cfg.timeout),
		inv2pdf.WithBasePath("."),
	)
	defer func() { _ = svc.Close() }()

	a := newApp(cfg, svc)
	if err := a.run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}
