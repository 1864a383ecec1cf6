package page_test

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hng13/deploypage/internal/domain"
	"github.com/hng13/deploypage/internal/page"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var timestampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)

func render(t *testing.T, r *page.Renderer) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestRenderer_AllVariants(t *testing.T) {
	clock := &fixedClock{t: time.Date(2025, time.October, 16, 14, 3, 9, 0, time.Local)}

	for _, v := range []domain.Variant{domain.VariantStage1, domain.VariantClassic} {
		t.Run(string(v), func(t *testing.T) {
			r, err := page.NewRenderer(v, clock)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Variant() != v {
				t.Fatalf("expected variant %q, got %q", v, r.Variant())
			}

			body := render(t, r)
			for _, want := range []string{
				"<!DOCTYPE html>",
				"Deployment Successful!",
				"Your automated deployment script is working!",
				"Server Time: 2025-10-16 14:03:09",
			} {
				if !strings.Contains(body, want) {
					t.Fatalf("body missing %q:\n%s", want, body)
				}
			}
		})
	}
}

func TestRenderer_Stage1KeepsHNGTitle(t *testing.T) {
	r, err := page.NewRenderer(domain.VariantStage1, &fixedClock{t: time.Now()})
	if err != nil {
		t.Fatal(err)
	}
	body := render(t, r)
	if !strings.Contains(body, "<title>Stage1 HNG13 Deployment Successful!</title>") {
		t.Fatalf("unexpected title in:\n%s", body)
	}
	if !strings.Contains(body, "🚀Stage1 HNG13 Deployment Successful!") {
		t.Fatal("expected rocket heading")
	}
}

// TestRenderer_ConsecutiveRendersDifferOnlyInTimestamp verifies the page
// structure is stable while the timestamp tracks the clock.
func TestRenderer_ConsecutiveRendersDifferOnlyInTimestamp(t *testing.T) {
	clock := &fixedClock{t: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)}
	r, err := page.NewRenderer(domain.VariantClassic, clock)
	if err != nil {
		t.Fatal(err)
	}

	first := render(t, r)
	clock.t = clock.t.Add(61 * time.Second)
	second := render(t, r)

	if first == second {
		t.Fatal("expected bodies to differ after the clock advanced")
	}
	if timestampRe.ReplaceAllString(first, "TS") != timestampRe.ReplaceAllString(second, "TS") {
		t.Fatal("bodies differ outside the timestamp")
	}
	if got := timestampRe.FindString(second); got != "2025-01-01 00:01:01" {
		t.Fatalf("unexpected second timestamp %q", got)
	}
}

func TestRenderer_NilClockUsesSystemTime(t *testing.T) {
	r, err := page.NewRenderer(domain.VariantStage1, nil)
	if err != nil {
		t.Fatal(err)
	}

	before := time.Now().Truncate(time.Second)
	ts := timestampRe.FindString(render(t, r))
	after := time.Now()

	got, err := time.ParseInLocation(domain.TimestampLayout, ts, time.Local)
	if err != nil {
		t.Fatalf("parse timestamp %q: %v", ts, err)
	}
	if got.Before(before) || got.After(after) {
		t.Fatalf("timestamp %v outside [%v, %v]", got, before, after)
	}
}

func TestNewRenderer_UnknownVariant(t *testing.T) {
	_, err := page.NewRenderer("neon", nil)
	if !errors.Is(err, domain.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}
