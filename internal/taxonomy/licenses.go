package taxonomy

import "strings"

// licenseVariants maps canonical license tags to their textual variants as
// they appear in briefs and candidate records.
var licenseVariants = map[string][]string{
	"Master Unlimited": {"master unlimited", "unlimited master", "master mariner"},
	"Master 3000GT":    {"3000gt", "3000 gt", "master 3000", "master 3000gt", "master <3000gt"},
	"Master 500GT":     {"500gt", "500 gt", "master 500", "master 500gt"},
	"Master 200GT":     {"200gt", "200 gt", "master 200", "master 200gt"},
	"Yachtmaster":      {"yachtmaster", "yacht master", "rya yachtmaster"},
	"OOW 3000GT":       {"oow", "oow 3000gt", "officer of the watch"},
	"Y3 Engineer":      {"y3", "y3 engineer", "mca y3"},
	"Y4 Engineer":      {"y4", "y4 engineer", "mca y4"},
}

// licenseRank orders licenses from most to least senior, used to pick a
// candidate's highest recorded license.
var licenseRank = []string{
	"Master Unlimited",
	"Master 3000GT",
	"Master 500GT",
	"Master 200GT",
	"Yachtmaster",
	"OOW 3000GT",
	"Y3 Engineer",
	"Y4 Engineer",
}

// nextRungLicenses lists the licenses that qualify a step-up candidate for
// the next rung of their ladder. Keyed by the canonical target role.
var nextRungLicenses = map[string][]string{
	"captain":        {"Master Unlimited", "Master 3000GT", "Master 500GT", "Master 200GT", "Yachtmaster"},
	"chief officer":  {"OOW 3000GT", "Yachtmaster"},
	"chief engineer": {"Y3 Engineer"},
	"second engineer": {"Y4 Engineer"},
}

// NormalizeLicense resolves a license string to its canonical tag.
func NormalizeLicense(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}
	for canonical, variants := range licenseVariants {
		if strings.EqualFold(canonical, lower) {
			return canonical, true
		}
		for _, v := range variants {
			if lower == v {
				return canonical, true
			}
		}
	}
	return "", false
}

// FindLicensesInText scans free text for license mentions, returning
// canonical tags.
func FindLicensesInText(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]bool)
	for canonical, variants := range licenseVariants {
		for _, v := range variants {
			if strings.Contains(lower, v) && !seen[canonical] {
				found = append(found, canonical)
				seen[canonical] = true
			}
		}
	}
	return found
}

// HighestLicense returns the most senior canonical license among the given
// names, or "" when none normalize.
func HighestLicense(names []string) string {
	held := make(map[string]bool)
	for _, name := range names {
		if canonical, ok := NormalizeLicense(name); ok {
			held[canonical] = true
		}
	}
	for _, canonical := range licenseRank {
		if held[canonical] {
			return canonical
		}
	}
	return ""
}

// LicensesForStepUp returns the licenses that evidence readiness for the
// given target role.
func LicensesForStepUp(targetRole string) []string {
	return nextRungLicenses[CanonicalTitle(targetRole)]
}
