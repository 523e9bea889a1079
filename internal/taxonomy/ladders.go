package taxonomy

import "strings"

// careerLadders holds the ordered progression of canonical position titles
// per department, most junior first. Resolution is exact-match-first so
// "stewardess" never matches inside "chief stewardess".
var careerLadders = map[Department][]string{
	DeptDeck:        {"deckhand", "lead deckhand", "bosun", "second officer", "chief officer", "captain"},
	DeptInterior:    {"junior stewardess", "stewardess", "second stewardess", "chief stewardess", "purser"},
	DeptEngineering: {"third engineer", "second engineer", "chief engineer"},
	DeptGalley:      {"crew chef", "sous chef", "head chef"},
	DeptVilla:       {"housekeeper", "head housekeeper", "house manager", "estate manager"},
	DeptChildcare:   {"nanny", "governess"},
	DeptSecurity:    {"security officer", "head of security"},
	DeptWellness:    {"spa therapist", "head of wellness"},
}

// titleAliases maps common title variants to the canonical ladder titles.
var titleAliases = map[string]string{
	"chief stew":      "chief stewardess",
	"head stewardess": "chief stewardess",
	"junior stew":     "junior stewardess",
	"2nd stewardess":  "second stewardess",
	"2nd stew":        "second stewardess",
	"stew":            "stewardess",
	"first officer":   "chief officer",
	"first mate":      "chief officer",
	"2nd officer":     "second officer",
	"master":          "captain",
	"skipper":         "captain",
	"boatswain":       "bosun",
	"deck hand":       "deckhand",
	"2nd engineer":    "second engineer",
	"3rd engineer":    "third engineer",
	"executive chef":  "head chef",
	"private chef":    "head chef",
	"yacht chef":      "crew chef",
	"house keeper":    "housekeeper",
}

// noStepUpRoles are roles where only exact matches are eligible. A chief
// officer may be considered for a captain search elsewhere, but never the
// other way around: these are terminal, accountability-bearing positions.
var noStepUpRoles = map[string]bool{
	"captain":        true,
	"chief engineer": true,
	"head chef":      true,
	"estate manager": true,
}

// CanonicalTitle normalizes a free-text position title to its canonical
// ladder form. Returns the cleaned input unchanged when no alias or ladder
// entry matches.
func CanonicalTitle(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	if alias, ok := titleAliases[title]; ok {
		return alias
	}
	return title
}

// LadderPosition locates a role on its department ladder using exact
// matching on the canonical title. Returns the department, the rung index
// (0 = most junior) and whether the role was found.
func LadderPosition(role string) (Department, int, bool) {
	canonical := CanonicalTitle(role)
	for dept, ladder := range careerLadders {
		for i, title := range ladder {
			if title == canonical {
				return dept, i, true
			}
		}
	}
	return DeptUnknown, 0, false
}

// StepDownRole returns the role one rung below the target on its ladder,
// unless the target is a no-step-up role or sits at the bottom.
func StepDownRole(role string) (string, bool) {
	canonical := CanonicalTitle(role)
	if noStepUpRoles[canonical] {
		return "", false
	}
	dept, rung, ok := LadderPosition(canonical)
	if !ok || rung == 0 {
		return "", false
	}
	return careerLadders[dept][rung-1], true
}

// EligibleRoles returns the target role plus, when permitted, the role one
// rung below it. The target comes back canonicalized.
func EligibleRoles(role string) []string {
	canonical := CanonicalTitle(role)
	roles := []string{canonical}
	if below, ok := StepDownRole(canonical); ok {
		roles = append(roles, below)
	}
	return roles
}

// RungDelta returns how many rungs roleA sits above roleB on a shared
// ladder. Negative values mean roleA is below roleB. The second return is
// false when the roles are on different ladders or unknown.
func RungDelta(roleA, roleB string) (int, bool) {
	deptA, rungA, okA := LadderPosition(roleA)
	deptB, rungB, okB := LadderPosition(roleB)
	if !okA || !okB || deptA != deptB {
		return 0, false
	}
	return rungA - rungB, true
}

// AllowsStepUp reports whether the role accepts step-up candidates at all.
func AllowsStepUp(role string) bool {
	return !noStepUpRoles[CanonicalTitle(role)]
}
