package gate

import (
	"strings"
	"testing"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/ceapwatch/ceapwatch/internal/features"
)

func TestComposeHiddenBypassesGate(t *testing.T) {
	for _, unlock := range []bool{false, true} {
		blocks := Compose(features.Flags{SubscriberPreview: false, SubscriberUnlock: unlock})
		if blocks != nil {
			t.Errorf("Compose(preview=false, unlock=%v) = %d blocks, want nil", unlock, len(blocks))
		}
	}
}

func TestComposeUnlocked(t *testing.T) {
	blocks := Compose(features.Flags{SubscriberPreview: true, SubscriberUnlock: true})
	if len(blocks) == 0 {
		t.Fatal("unlocked compose produced no blocks")
	}
	for _, b := range blocks {
		if b.Kind == BlockCTA || b.Obscured {
			t.Errorf("unlocked compose left gated artifacts: %+v", b)
		}
	}
}

func TestComposeLockedEmbedsGlossaryExcerpt(t *testing.T) {
	blocks := Compose(features.Flags{SubscriberPreview: true, SubscriberUnlock: false})

	mismatchFields := catalog.Filter(catalog.All(), "", catalog.EntityMismatch, lockedGlossaryRows)
	if len(mismatchFields) == 0 {
		t.Fatal("catalog has no Mismatch fields to embed")
	}

	var lockedText strings.Builder
	for _, b := range blocks {
		if b.Kind == BlockLocked {
			lockedText.WriteString(b.Text)
			lockedText.WriteString("\n")
		}
	}
	for _, fd := range mismatchFields {
		if !strings.Contains(lockedText.String(), fd.Field) {
			t.Errorf("locked content missing glossary field %q", fd.Field)
		}
	}
}

func TestSubscriberSectionTeaserMentionsPublicStats(t *testing.T) {
	s := SubscriberSection()
	if len(s.Teaser) == 0 || len(s.Locked) == 0 {
		t.Fatalf("section incomplete: %d teaser, %d locked", len(s.Teaser), len(s.Locked))
	}
	joined := strings.Join(s.Teaser, " ")
	if !strings.Contains(joined, "630.552") {
		t.Errorf("teaser does not cite the source record count: %q", joined)
	}
	if s.CTA.Href != "#newsletter" {
		t.Errorf("CTA href = %q", s.CTA.Href)
	}
}
