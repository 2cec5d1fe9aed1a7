package publisher

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"linkedin_post_bot/generator"
)

var runAt = time.Date(2026, 10, 19, 9, 5, 7, 0, time.UTC)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testConfig(dir string) Config {
	cfg := Defaults()
	cfg.OutputDir = filepath.Join(dir, "linkedin_posts")
	cfg.LatestFile = filepath.Join(dir, "latest_post.txt")
	return cfg
}

func TestArchiveBody(t *testing.T) {
	sel := generator.Selection{Topic: "office lunch drama", Tone: "witty"}
	got := ArchiveBody(runAt, sel, "Who ate my sandwich? 🥪")

	want := "Date: October 19, 2026 at 09:05 AM UTC\n" +
		"Topic: office lunch drama\n" +
		"Tone: witty\n" +
		strings.Repeat("-", 50) + "\n\n" +
		"Who ate my sandwich? 🥪"
	if got != want {
		t.Errorf("ArchiveBody() =\n%s\nwant\n%s", got, want)
	}
}

func TestArchiveBody_AfternoonClock(t *testing.T) {
	at := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	got := ArchiveBody(at, generator.Selection{}, "")
	if !strings.HasPrefix(got, "Date: March 04, 2026 at 03:30 PM UTC\n") {
		t.Errorf("unexpected date line: %q", strings.SplitN(got, "\n", 2)[0])
	}
}

func TestSaveArchive(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	p := New(testConfig(dir), &out, quietLogger())

	path := p.SaveArchive(runAt, generator.Selection{Topic: "t", Tone: "funny"}, "body")
	want := filepath.Join(dir, "linkedin_posts", "post_20261019_090507.txt")
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n\nbody") {
		t.Errorf("archive content = %q", data)
	}
	if !strings.Contains(out.String(), "💾 Post saved to: "+want) {
		t.Errorf("console = %q", out.String())
	}

	// the directory already existing is fine
	if p.SaveArchive(runAt.Add(time.Second), generator.Selection{}, "again") == "" {
		t.Error("second SaveArchive failed")
	}
}

func TestSaveArchive_FailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	// a regular file where the directory should be
	if err := os.WriteFile(cfg.OutputDir, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	p := New(cfg, &out, quietLogger())

	if path := p.SaveArchive(runAt, generator.Selection{}, "body"); path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if !strings.Contains(out.String(), "⚠️ Could not save:") {
		t.Errorf("console = %q, want warning", out.String())
	}
}

func TestSaveLatest(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	p := New(cfg, io.Discard, quietLogger())

	if err := os.WriteFile(cfg.LatestFile, []byte("yesterday's much longer post"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveLatest("today"); err != nil {
		t.Fatalf("SaveLatest: %v", err)
	}
	data, _ := os.ReadFile(cfg.LatestFile)
	if string(data) != "today" {
		t.Errorf("latest = %q, want %q", data, "today")
	}

	cfg.LatestFile = filepath.Join(dir, "missing", "latest_post.txt")
	if err := New(cfg, io.Discard, quietLogger()).SaveLatest("x"); err == nil {
		t.Error("expected error for missing parent directory")
	}
}

func TestSaveHTML(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	// disabled by default
	New(cfg, io.Discard, quietLogger()).SaveHTML("ignored")
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("SaveHTML wrote files while disabled: %v", entries)
	}

	cfg.HTMLFile = filepath.Join(dir, "latest_post.html")
	var out bytes.Buffer
	New(cfg, &out, quietLogger()).SaveHTML("Hello *there*\n\n#hashtag")
	data, err := os.ReadFile(cfg.HTMLFile)
	if err != nil {
		t.Fatalf("reading html: %v", err)
	}
	if !strings.Contains(string(data), "<em>there</em>") {
		t.Errorf("html = %q", data)
	}
	if !strings.Contains(out.String(), "HTML preview saved to") {
		t.Errorf("console = %q", out.String())
	}
}
