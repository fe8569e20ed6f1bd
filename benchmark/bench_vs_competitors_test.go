package benchmark_test

import (
	"flag"
	"io"
	"testing"

	"github.com/sigpwned/go-justargs/justargs"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
)

// Benchmark a small realistic invocation: one bool flag, one valued option,
// two positional arguments. Each competitor parses the equivalent input;
// cobra and urfave rebuild their command tree per iteration because neither
// supports reusing a parsed state, which mirrors how short-lived CLI
// processes use them.

func benchRegistry() justargs.Registry {
	return justargs.Registry{
		ShortOptions:       map[rune]string{'o': "output"},
		LongOptions:        map[string]string{"output": "output"},
		ShortPositiveFlags: map[rune]string{'v': "verbose"},
		LongPositiveFlags:  map[string]string{"verbose": "verbose"},
		ShortNegativeFlags: map[rune]string{},
		LongNegativeFlags:  map[string]string{},
	}
}

func BenchmarkSimpleArgs_JustArgs(b *testing.B) {
	reg := benchRegistry()
	args := []string{"--verbose", "--output", "out.txt", "input.txt", "backup.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := justargs.Parse(args, 8, reg)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpleArgs_Cobra(b *testing.B) {
	args := []string{"--verbose", "--output", "out.txt", "input.txt", "backup.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use:  "bench",
			Args: cobra.ArbitraryArgs,
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.Flags().StringP("output", "o", "", "Output file")
		rootCmd.SetOut(io.Discard)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleArgs_Urfave(b *testing.B) {
	args := []string{"bench", "--verbose", "--output", "out.txt", "input.txt", "backup.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

func BenchmarkSimpleArgs_StdFlag(b *testing.B) {
	args := []string{"--verbose", "--output", "out.txt", "input.txt", "backup.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := flag.NewFlagSet("bench", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.Bool("verbose", false, "Verbose output")
		fs.String("output", "", "Output file")
		if err := fs.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark repeated switches: the accumulate-everything model is the whole
// point of this package, so measure it against the competitors that support
// repetition at all. The stdlib flag package overwrites repeats and is
// omitted.

func BenchmarkRepeatedSwitches_JustArgs(b *testing.B) {
	reg := benchRegistry()
	args := []string{"-v", "-v", "-v", "--output", "a", "--output=b", "-o", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := justargs.Parse(args, 8, reg)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRepeatedSwitches_Cobra(b *testing.B) {
	args := []string{"-v", "-v", "-v", "--output", "a", "--output=b", "-o", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use:  "bench",
			Args: cobra.ArbitraryArgs,
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().CountP("verbose", "v", "Verbose output")
		rootCmd.Flags().StringArrayP("output", "o", nil, "Output files")
		rootCmd.SetOut(io.Discard)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkRepeatedSwitches_Urfave(b *testing.B) {
	args := []string{"bench", "-v", "-v", "-v", "--output", "a", "--output", "b", "-o", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
				&cli.StringSliceFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output files"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
