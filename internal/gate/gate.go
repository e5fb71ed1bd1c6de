// Package gate composes teaser and locked content into the render tree of a
// gated section. Rendering is a pure function of the display mode and the
// section content; it never mutates either and performs no I/O.
package gate

import "github.com/ceapwatch/ceapwatch/internal/features"

// Mode is the observable display state of a gated section. The two feature
// flags have four raw combinations, but only three behaviors are
// distinguishable: when the preview flag is off the unlock flag is moot.
type Mode int

const (
	// ModeHidden suppresses the section entirely, teaser included.
	ModeHidden Mode = iota
	// ModeUnlockedFull shows teaser and locked content with no overlay.
	ModeUnlockedFull
	// ModeLockedWithTeaser shows the teaser, obscures the locked content
	// and layers a call-to-action over it.
	ModeLockedWithTeaser
)

func (m Mode) String() string {
	switch m {
	case ModeHidden:
		return "hidden"
	case ModeUnlockedFull:
		return "unlocked"
	case ModeLockedWithTeaser:
		return "locked"
	default:
		return "unknown"
	}
}

// ModeFor collapses the two feature flags into the display mode.
func ModeFor(f features.Flags) Mode {
	switch {
	case !f.SubscriberPreview:
		return ModeHidden
	case f.SubscriberUnlock:
		return ModeUnlockedFull
	default:
		return ModeLockedWithTeaser
	}
}

// DefaultBadge labels a locked section title.
const DefaultBadge = "ASSINANTES"

// CTA is the call-to-action shown over obscured content. Href is passed
// through untouched; fragment targets like "#newsletter" designate an
// in-page anchor resolved by whatever hosts the rendered output.
type CTA struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonLabel string `json:"buttonLabel"`
	Href        string `json:"href"`
}

// Section is the input content of one gated section.
type Section struct {
	Title string
	// Badge overrides DefaultBadge on the title when the section is locked.
	Badge  string
	Teaser []string
	Locked []string
	CTA    CTA
}

// BlockKind discriminates the blocks of a rendered section.
type BlockKind string

const (
	BlockTitle  BlockKind = "title"
	BlockTeaser BlockKind = "teaser"
	BlockLocked BlockKind = "locked"
	BlockCTA    BlockKind = "cta"
)

// Block is one element of the rendered section, in display order.
type Block struct {
	Kind BlockKind `json:"kind"`
	// Text carries the title or paragraph content.
	Text string `json:"text,omitempty"`
	// Badge is set on the title block while the section is locked.
	Badge string `json:"badge,omitempty"`
	// Obscured is set on locked-content blocks pending unlock.
	Obscured bool `json:"obscured,omitempty"`
	// CTA is populated on the single BlockCTA block of a locked section.
	CTA CTA `json:"cta,omitzero"`
}

// Render produces the ordered block list for a section in the given mode.
// ModeHidden yields nil. The input section is not modified.
func Render(mode Mode, s Section) []Block {
	if mode == ModeHidden {
		return nil
	}

	locked := mode == ModeLockedWithTeaser

	blocks := make([]Block, 0, len(s.Teaser)+len(s.Locked)+2)

	title := Block{Kind: BlockTitle, Text: s.Title}
	if locked {
		title.Badge = s.Badge
		if title.Badge == "" {
			title.Badge = DefaultBadge
		}
	}
	blocks = append(blocks, title)

	for _, p := range s.Teaser {
		blocks = append(blocks, Block{Kind: BlockTeaser, Text: p})
	}
	for _, p := range s.Locked {
		blocks = append(blocks, Block{Kind: BlockLocked, Text: p, Obscured: locked})
	}

	if locked {
		blocks = append(blocks, Block{Kind: BlockCTA, CTA: s.CTA})
	}

	return blocks
}
