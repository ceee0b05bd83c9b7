// Command claudetext sends a single prompt to the legacy Anthropic text
// completions endpoint and prints the completion. It exists to exercise the
// adapter end to end; nothing in the library depends on it.
//
// The API key comes from ANTHROPIC_API_KEY (a .env file in the working
// directory is honored).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/skosovsky/claudetext"
)

var (
	flagModel       string
	flagMaxTokens   int64
	flagTemperature float64
	flagStream      bool
	flagStop        []string
	flagTimeout     time.Duration
	flagQuiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "claudetext [flags] <prompt>",
	Short: "Send a prompt to the legacy Anthropic text completions API",
	Long: `claudetext frames a raw prompt with Human/Assistant turn markers and sends
it to the legacy text completions endpoint. Unframed prompts are wrapped
automatically; pass an already-framed prompt to control the dialogue
yourself.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagModel, "model", claudetext.DefaultModel, "model identifier")
	rootCmd.Flags().Int64Var(&flagMaxTokens, "max-tokens", claudetext.DefaultMaxTokensToSample, "maximum tokens to sample")
	rootCmd.Flags().Float64Var(&flagTemperature, "temperature", -1, "sampling temperature (unset by default)")
	rootCmd.Flags().BoolVar(&flagStream, "stream", false, "print chunks as they arrive")
	rootCmd.Flags().StringArrayVar(&flagStop, "stop", nil, "additional stop sequence (repeatable)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (0 = SDK default)")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the deprecation warning")
}

func run(cmd *cobra.Command, args []string) error {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	logger := slog.Default()
	if flagQuiet {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := []claudetext.Option{
		claudetext.WithModel(flagModel),
		claudetext.WithMaxTokensToSample(flagMaxTokens),
		claudetext.WithLogger(logger),
	}
	if flagTemperature >= 0 {
		opts = append(opts, claudetext.WithTemperature(flagTemperature))
	}
	if flagTimeout > 0 {
		opts = append(opts, claudetext.WithRequestTimeout(flagTimeout))
	}

	llm, err := claudetext.New(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	callOpts := []claudetext.CallOption{
		claudetext.WithStopSequences(flagStop...),
	}
	if !flagStream {
		text, err := llm.Complete(ctx, args[0], callOpts...)
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimSpace(text))
		return nil
	}

	chunkColor := color.New(color.FgCyan)
	for chunk, err := range llm.Stream(ctx, args[0], callOpts...) {
		if err != nil {
			return err
		}
		chunkColor.Print(chunk.Text)
	}
	fmt.Println()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
