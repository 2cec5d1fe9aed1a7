package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"linkedin_post_bot/bot"
	"linkedin_post_bot/generator"
	"linkedin_post_bot/publisher"
)

var errRunFailed = errors.New("run failed")

type runOptions struct {
	ConfigPath     string
	ConfigExplicit bool
	Strict         bool
	HTMLFile       string
	DryRun         bool
}

var (
	opts    runOptions
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "linkedin-post-bot",
	Short: "Generate today's LinkedIn post",
	Long: `Picks a topic and tone for the current date, asks the model for a post,
prints it and saves it under linkedin_posts/ plus latest_post.txt.
Meant to be triggered once a day by an external scheduler.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.ConfigExplicit = cmd.Flags().Changed("config")
		logger := newLogger(cmd.ErrOrStderr(), verbose)
		if code := run(cmd.Context(), opts, cmd.OutOrStdout(), logger, time.Now()); code != 0 {
			return errRunFailed
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&opts.ConfigPath, "config", publisher.DefaultConfigPath, "path to YAML config")
	rootCmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail the run when generation fails instead of saving the error text")
	rootCmd.Flags().StringVar(&opts.HTMLFile, "html", "", "also write an HTML rendering of the post to this path")
	rootCmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print today's topic, tone and prompt without calling the model")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// run performs one invocation and returns the process exit code.
func run(ctx context.Context, o runOptions, out io.Writer, logger *logrus.Logger, now time.Time) int {
	fmt.Fprintln(out, "🤖 Starting LinkedIn Post Generation...")

	cfg, err := publisher.LoadConfig(o.ConfigPath, !o.ConfigExplicit)
	if err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return 1
	}
	if o.Strict {
		cfg.Strict = true
	}
	if o.HTMLFile != "" {
		cfg.HTMLFile = o.HTMLFile
	}

	if o.DryRun {
		sel := generator.PickDaily(now)
		bot.PrintHeader(out, now, sel)
		fmt.Fprint(out, generator.BuildPostPrompt(sel).User)
		return 0
	}

	llm, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return 1
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return 1
	}
	pub := publisher.New(cfg, out, logger)
	b, err := bot.New(agent, pub, bot.Options{Strict: cfg.Strict, Out: out, Logger: logger})
	if err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return 1
	}

	logger.Debugf("[cli] generating with model=%s output_dir=%s", cfg.LLM.Model, cfg.OutputDir)
	if !b.GenerateAndSave(ctx, now) {
		fmt.Fprintln(out, "❌ Failed to generate post")
		return 1
	}
	fmt.Fprintln(out, "✅ Daily post generated successfully!")
	return 0
}

func buildLLM(cfg publisher.Config) (generator.LLMClient, error) {
	if cfg.LLM == nil {
		return nil, fmt.Errorf("llm config missing; please set llm.model/api_key_env in config")
	}
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.APIKey(),
			APIKeyEnv:   cfg.LLM.APIKeyEnv,
			BaseURL:     cfg.LLM.BaseURL,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		})
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
