// Package bot runs one daily post: select, generate, print, persist.
package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"linkedin_post_bot/generator"
	"linkedin_post_bot/publisher"
)

const (
	bannerWidth  = 60
	bannerLayout = "January 02, 2006"
)

// Bot owns one generation run.
type Bot struct {
	agent  *generator.Agent
	pub    *publisher.Publisher
	out    io.Writer
	logger *logrus.Logger
	strict bool
}

// Options tune a Bot. Zero values are fine.
type Options struct {
	// Strict aborts the run when generation fails instead of saving the error text.
	Strict bool
	Out    io.Writer
	Logger *logrus.Logger
}

func New(agent *generator.Agent, pub *publisher.Publisher, opts Options) (*Bot, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if pub == nil {
		return nil, errors.New("publisher required")
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Bot{
		agent:  agent,
		pub:    pub,
		out:    opts.Out,
		logger: opts.Logger,
		strict: opts.Strict,
	}, nil
}

// GenerateAndSave produces the post for now and writes it out.
// It reports false on any failure that reaches this level; the error has already been printed.
func (b *Bot) GenerateAndSave(ctx context.Context, now time.Time) bool {
	if err := b.run(ctx, now); err != nil {
		fmt.Fprintf(b.out, "❌ Error: %v\n", err)
		b.logger.WithError(err).Error("daily post failed")
		return false
	}
	return true
}

func (b *Bot) run(ctx context.Context, now time.Time) error {
	sel := generator.PickDaily(now)
	b.logger.WithFields(logrus.Fields{"topic": sel.Topic, "tone": sel.Tone}).Debug("selected daily topic")
	PrintHeader(b.out, now, sel)

	res := b.agent.Generate(ctx, sel)
	if !res.OK() {
		b.logger.WithError(res.Err).Warn("generation failed")
		if b.strict {
			return fmt.Errorf("generation failed: %w", res.Err)
		}
	}
	post := res.Text()

	fmt.Fprintln(b.out, post)
	fmt.Fprintln(b.out, "\n"+strings.Repeat("=", bannerWidth))

	b.pub.SaveArchive(now, sel, post)
	if err := b.pub.SaveLatest(post); err != nil {
		return err
	}
	b.pub.SaveHTML(post)
	return nil
}

// PrintHeader writes the run banner with today's topic and tone.
func PrintHeader(w io.Writer, now time.Time, sel generator.Selection) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "🌅 DAILY LINKEDIN POST - %s\n", now.Format(bannerLayout))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "📝 Topic: %s\n", sel.Topic)
	fmt.Fprintf(w, "🎭 Tone: %s\n", sel.Tone)
	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))
}
