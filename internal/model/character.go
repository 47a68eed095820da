package model

import "strings"

// Attribute names as they appear in comparison results
const (
	AttrName        = "name"
	AttrGender      = "gender"
	AttrClasses     = "classes"
	AttrRange       = "range"
	AttrHairColor   = "hairColor"
	AttrReleaseYear = "releaseYear"
	AttrWeaponCount = "weaponCount"
	AttrImageURL    = "imageUrl"
)

// Character is one entry in the game roster.
// Records are immutable once loaded; the name is the identity key.
type Character struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Classes     string `json:"classes"` // comma-separated role tags, e.g. "Fighter,Mage"
	Range       string `json:"range"`   // comma-separated range tags, e.g. "Melee,Ranged"
	HairColor   string `json:"hairColor"`
	ReleaseYear string `json:"releaseYear"` // integer-valued string
	WeaponCount int    `json:"weaponCount"`
	ImageURL    string `json:"imageUrl"` // display-only, never compared
}

// Tags splits a comma-separated tag list into normalized (trimmed,
// lowercased) tags. Empty segments are dropped.
func Tags(list string) []string {
	parts := strings.Split(list, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.ToLower(strings.TrimSpace(p))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
