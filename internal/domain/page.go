package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout renders server time as YYYY-MM-DD HH:MM:SS.
const TimestampLayout = "2006-01-02 15:04:05"

// Variant selects one of the fixed page layouts.
type Variant string

const (
	VariantStage1  Variant = "stage1"
	VariantClassic Variant = "classic"
)

func (v Variant) IsValid() bool {
	switch v {
	case VariantStage1, VariantClassic:
		return true
	}
	return false
}

// ParseVariant accepts a variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

// UnmarshalText lets config loaders decode a Variant straight from the environment.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Page is the view model interpolated into a variant's template.
type Page struct {
	Title      string
	Heading    string
	Message    string
	ServerTime string
}

const deployedMessage = "Your automated deployment script is working!"

// NewPage builds the page for v at the given instant. Only ServerTime
// depends on now.
func NewPage(v Variant, now time.Time) Page {
	p := Page{
		Message:    deployedMessage,
		ServerTime: FormatTimestamp(now),
	}
	switch v {
	case VariantClassic:
		p.Title = "Deployment Successful!"
		p.Heading = "Deployment Successful!"
	default:
		p.Title = "Stage1 HNG13 Deployment Successful!"
		p.Heading = "🚀Stage1 HNG13 Deployment Successful!"
	}
	return p
}

// FormatTimestamp formats t in its own location using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
