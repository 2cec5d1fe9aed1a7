package publisher

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"

	"linkedin_post_bot/generator"
)

const (
	archiveNameLayout = "20060102_150405"
	archiveDateLayout = "January 02, 2006 at 03:04 PM"
	separatorWidth    = 50
)

// Publisher writes generated posts to disk.
type Publisher struct {
	cfg    Config
	out    io.Writer
	logger *logrus.Logger
}

// New creates a Publisher. Console lines go to out, diagnostics to logger.
func New(cfg Config, out io.Writer, logger *logrus.Logger) *Publisher {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Publisher{cfg: cfg, out: out, logger: logger}
}

// ArchivePath returns where the archive for a run started at now is written.
func (p *Publisher) ArchivePath(now time.Time) string {
	return filepath.Join(p.cfg.OutputDir, "post_"+now.Format(archiveNameLayout)+".txt")
}

// SaveArchive writes the timestamped copy with its metadata header and returns its path.
// Errors are reported and swallowed; the returned path is empty in that case.
func (p *Publisher) SaveArchive(now time.Time, sel generator.Selection, post string) string {
	path, err := p.writeArchive(now, sel, post)
	if err != nil {
		fmt.Fprintf(p.out, "⚠️ Could not save: %v\n", err)
		p.logger.WithError(err).Warn("archive write failed")
		return ""
	}
	fmt.Fprintf(p.out, "💾 Post saved to: %s\n", path)
	return path
}

func (p *Publisher) writeArchive(now time.Time, sel generator.Selection, post string) (string, error) {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return "", err
	}
	path := p.ArchivePath(now)
	if err := os.WriteFile(path, []byte(ArchiveBody(now, sel, post)), 0o644); err != nil {
		return "", err
	}
	p.logger.Debugf("archive written to %s", path)
	return path, nil
}

// ArchiveBody renders the header block followed by the post.
func ArchiveBody(now time.Time, sel generator.Selection, post string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Date: %s UTC\n", now.Format(archiveDateLayout)))
	sb.WriteString(fmt.Sprintf("Topic: %s\n", sel.Topic))
	sb.WriteString(fmt.Sprintf("Tone: %s\n", sel.Tone))
	sb.WriteString(strings.Repeat("-", separatorWidth))
	sb.WriteString("\n\n")
	sb.WriteString(post)
	return sb.String()
}

// SaveLatest overwrites the latest file with the bare post. Unlike SaveArchive it returns its error.
func (p *Publisher) SaveLatest(post string) error {
	if err := os.WriteFile(p.cfg.LatestFile, []byte(post), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.cfg.LatestFile, err)
	}
	p.logger.Debugf("latest post written to %s", p.cfg.LatestFile)
	return nil
}

// SaveHTML renders the post as HTML when an html_file is configured.
// Like the archive, a failure here is only a warning.
func (p *Publisher) SaveHTML(post string) {
	if p.cfg.HTMLFile == "" {
		return
	}
	html, err := mdToHTML(post)
	if err == nil {
		err = os.WriteFile(p.cfg.HTMLFile, []byte(html), 0o644)
	}
	if err != nil {
		fmt.Fprintf(p.out, "⚠️ Could not save HTML preview: %v\n", err)
		p.logger.WithError(err).Warn("html preview write failed")
		return
	}
	fmt.Fprintf(p.out, "🌐 HTML preview saved to: %s\n", p.cfg.HTMLFile)
}

func mdToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
