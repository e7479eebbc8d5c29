// Package quiz classifies travellers into one of four fixed profiles from
// their answers to a multiple-choice question bank.
package quiz

// ProfileKey identifies a traveller archetype.
type ProfileKey string

const (
	ProfileSocial     ProfileKey = "social"
	ProfileRadical    ProfileKey = "radical"
	ProfileConsciente ProfileKey = "consciente"
	ProfileSolo       ProfileKey = "solo"
)

// TieBreakOrder ranks profiles for resolving equal scores. An earlier key
// beats any later key with the same score.
var TieBreakOrder = []ProfileKey{ProfileConsciente, ProfileSocial, ProfileRadical, ProfileSolo}

func (k ProfileKey) Valid() bool {
	switch k {
	case ProfileSocial, ProfileRadical, ProfileConsciente, ProfileSolo:
		return true
	}
	return false
}

// CTA is a recommended next step shown with a profile.
type CTA struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Path  string `yaml:"path" json:"path" validate:"required,startswith=/"`
}

// Profile is the display content for a ProfileKey.
type Profile struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	CTAs        []CTA  `yaml:"ctas" json:"ctas" validate:"min=1,dive"`
}
