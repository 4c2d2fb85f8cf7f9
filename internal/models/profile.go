// Package models defines the records exchanged between the token engine and
// its persistence and CLI layers.
package models

import (
	"strings"
	"time"

	"github.com/opencode-ai/brandkit/internal/tokens"
)

// Profile is a stored brand profile.
type Profile struct {
	// ID is the unique identifier for the profile.
	ID string `json:"id"`

	// Name is the human-readable brand name.
	Name string `json:"name"`

	// Legacy holds the flat fields profiles carried before token trees.
	Legacy *LegacyProfile `json:"legacy,omitempty"`

	// Tokens is the persisted token tree, if one was ever saved.
	Tokens *tokens.Tree `json:"tokens,omitempty"`

	// ContentHash is the SHA-256 of the persisted tokens JSON.
	ContentHash string `json:"content_hash,omitempty"`

	// CreatedAt is when the profile was first created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the profile was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the profile is valid.
func (p *Profile) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(p.Name) == "" {
		validation.AddMessage("name", "profile name is required")
	}
	return validation.Err()
}

// LegacyProfile is the flat brand description used before token trees.
type LegacyProfile struct {
	Colors       *LegacyColors       `json:"colors,omitempty"`
	Fonts        *LegacyFonts        `json:"fonts,omitempty"`
	Layout       *LegacyLayout       `json:"layout,omitempty"`
	Logo         string              `json:"logo,omitempty"`
	LogoVariants *LegacyLogoVariants `json:"logoVariants,omitempty"`
}

// LegacyColors holds the three user-chosen swatches.
type LegacyColors struct {
	Dark   string `json:"dark"`
	Light  string `json:"light"`
	Accent string `json:"accent"`
}

type LegacyFonts struct {
	Headline LegacyHeadline `json:"headline"`
	Body     LegacyBody     `json:"body"`
}

type LegacyHeadline struct {
	Family string `json:"family"`
	// Weight is free text such as "700" or "bold".
	Weight    string `json:"weight,omitempty"`
	Uppercase *bool  `json:"uppercase,omitempty"`
}

type LegacyBody struct {
	Family string `json:"family,omitempty"`
}

type LegacyLayout struct {
	Padding LegacyPadding `json:"padding"`
	Button  LegacyButton  `json:"button"`
}

type LegacyPadding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

type LegacyButton struct {
	Radius   *float64 `json:"radius,omitempty"`
	PaddingX *float64 `json:"paddingX,omitempty"`
	PaddingY *float64 `json:"paddingY,omitempty"`
}

type LegacyLogoVariants struct {
	Dark  string `json:"dark,omitempty"`
	Light string `json:"light,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// IsEmpty reports whether none of the structural legacy sections is set.
func (l *LegacyProfile) IsEmpty() bool {
	return l == nil || (l.Colors == nil && l.Fonts == nil && l.Layout == nil)
}
