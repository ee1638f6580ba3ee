// Package profile defines the tone profiles used by the rewrite tool. Each
// profile carries four sentence starters, one of which is prepended to the
// rewritten text.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProfile is returned by Load for names not in the registry.
var ErrUnknownProfile = errors.New("profile: unknown profile")

// Default is the profile used when no tone is configured.
const Default = "professional"

// Profile describes a rewrite tone.
type Profile struct {
	Name        string
	Label       string
	Description string
	Starters    [4]string
}

// builtins is the registry of built-in profiles keyed by name.
var builtins = map[string]Profile{
	"professional": {
		Name:        "professional",
		Label:       "Professional",
		Description: "Measured, businesslike phrasing for reports and email.",
		Starters: [4]string{
			"To put it clearly,",
			"In summary,",
			"From a practical standpoint,",
			"It is worth noting that",
		},
	},
	"casual": {
		Name:        "casual",
		Label:       "Casual",
		Description: "Relaxed, conversational phrasing.",
		Starters: [4]string{
			"So basically,",
			"Here's the thing:",
			"Honestly,",
			"Let's be real,",
		},
	},
	"academic": {
		Name:        "academic",
		Label:       "Academic",
		Description: "Formal phrasing suited to papers and research writing.",
		Starters: [4]string{
			"It can be argued that",
			"The evidence suggests that",
			"From an analytical perspective,",
			"Research indicates that",
		},
	},
	"creative": {
		Name:        "creative",
		Label:       "Creative",
		Description: "Vivid, narrative phrasing.",
		Starters: [4]string{
			"Imagine this:",
			"Picture a world where",
			"Once you look closer,",
			"Here is the story:",
		},
	},
	"persuasive": {
		Name:        "persuasive",
		Label:       "Persuasive",
		Description: "Direct phrasing that argues for a position.",
		Starters: [4]string{
			"Consider this:",
			"The truth is,",
			"There is no doubt that",
			"Make no mistake:",
		},
	},
}

var names = []string{"professional", "casual", "academic", "creative", "persuasive"}

// Load returns the named built-in profile. An empty name selects Default.
func Load(name string) (Profile, error) {
	if name == "" {
		name = Default
	}
	p, ok := builtins[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownProfile, name, strings.Join(names, ", "))
	}
	return p, nil
}

// Names returns the built-in profile names in display order.
func Names() []string {
	return append([]string(nil), names...)
}
