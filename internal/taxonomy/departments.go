// Package taxonomy provides the occupational reference data for crew matching:
// departments, career ladders, certification aliases and license variants.
// All tables are data-driven maps so every alias can be unit tested in isolation.
package taxonomy

import "strings"

// Department is a coarse occupational category used for hard eligibility filtering.
type Department string

// Known departments.
const (
	DeptDeck        Department = "deck"
	DeptInterior    Department = "interior"
	DeptEngineering Department = "engineering"
	DeptGalley      Department = "galley"
	DeptVilla       Department = "villa"
	DeptChildcare   Department = "childcare"
	DeptSecurity    Department = "security"
	DeptMedical     Department = "medical"
	DeptManagement  Department = "management"
	DeptWellness    Department = "wellness"
	DeptOther       Department = "other"
	DeptUnknown     Department = "unknown"
)

// departmentKeywords maps each department to position-title fragments used
// for string inference when no stored category is available. Fragments are
// checked against the lowercased title with substring matching, so more
// specific ladders are resolved first via LadderPosition.
var departmentKeywords = map[Department][]string{
	DeptDeck:        {"deckhand", "bosun", "boatswain", "officer", "captain", "mate", "skipper"},
	DeptInterior:    {"stewardess", "steward", "purser", "interior"},
	DeptEngineering: {"engineer", "eto", "electrician"},
	DeptGalley:      {"chef", "cook", "galley"},
	DeptVilla:       {"housekeeper", "house manager", "estate manager", "butler", "villa", "household"},
	DeptChildcare:   {"nanny", "governess", "tutor", "maternity nurse"},
	DeptSecurity:    {"security", "close protection", "bodyguard"},
	DeptMedical:     {"nurse", "medic", "paramedic", "doctor"},
	DeptManagement:  {"estate director", "chief of staff", "family office", "property manager"},
	DeptWellness:    {"masseuse", "massage", "personal trainer", "yoga", "beautician", "spa"},
}

// keywordScanOrder fixes the inference order so titles matching several
// departments resolve deterministically. Specific departments come before
// deck, whose "officer" and "mate" fragments are the most generic.
var keywordScanOrder = []Department{
	DeptSecurity,
	DeptChildcare,
	DeptMedical,
	DeptManagement,
	DeptWellness,
	DeptEngineering,
	DeptGalley,
	DeptVilla,
	DeptInterior,
	DeptDeck,
}

// categoryAliases maps stored position-category values from the candidate
// store onto departments. The store is the preferred source; title inference
// is the fallback.
var categoryAliases = map[string]Department{
	"deck":        DeptDeck,
	"interior":    DeptInterior,
	"engineering": DeptEngineering,
	"engineer":    DeptEngineering,
	"galley":      DeptGalley,
	"chef":        DeptGalley,
	"villa":       DeptVilla,
	"household":   DeptVilla,
	"childcare":   DeptChildcare,
	"security":    DeptSecurity,
	"medical":     DeptMedical,
	"management":  DeptManagement,
	"wellness":    DeptWellness,
	"other":       DeptOther,
}

// crossCompatiblePairs lists department pairs whose candidates are allowed
// to cross over during eligibility filtering. The list is the single
// authority for cross-department compatibility; the suitability scorer
// consults it too so filter and scorer cannot disagree.
var crossCompatiblePairs = map[Department][]Department{
	DeptInterior:  {DeptVilla},
	DeptVilla:     {DeptInterior, DeptGalley, DeptChildcare},
	DeptGalley:    {DeptVilla},
	DeptChildcare: {DeptVilla},
}

// DepartmentForCategory resolves a stored position-category string to a
// department. Returns DeptUnknown when the category is empty or unrecognized.
func DepartmentForCategory(category string) Department {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return DeptUnknown
	}
	if dept, ok := categoryAliases[category]; ok {
		return dept
	}
	return DeptUnknown
}

// DepartmentForPosition infers a department from a position title.
// Exact ladder membership wins over keyword inference, so "chief stewardess"
// resolves through the interior ladder before the generic keyword scan runs.
func DepartmentForPosition(position string) Department {
	position = strings.ToLower(strings.TrimSpace(position))
	if position == "" {
		return DeptUnknown
	}

	if dept, _, ok := LadderPosition(position); ok {
		return dept
	}

	for _, dept := range keywordScanOrder {
		for _, kw := range departmentKeywords[dept] {
			if strings.Contains(position, kw) {
				return dept
			}
		}
	}

	return DeptUnknown
}

// DepartmentForCandidate picks the candidate's department, preferring the
// stored category over title inference.
func DepartmentForCandidate(category, position string) Department {
	if dept := DepartmentForCategory(category); dept != DeptUnknown {
		return dept
	}
	return DepartmentForPosition(position)
}

// Compatible reports whether a candidate from candidateDept may be matched
// into a search targeting searchDept. Same department is always compatible;
// otherwise the pair must appear on the cross-compatibility list.
func Compatible(searchDept, candidateDept Department) bool {
	if searchDept == candidateDept {
		return true
	}
	for _, dept := range crossCompatiblePairs[searchDept] {
		if dept == candidateDept {
			return true
		}
	}
	return false
}
