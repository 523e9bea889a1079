package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

var juniorKeywords = []string{"junior", "entry level", "entry-level", "trainee", "first season", "green crew", "no experience necessary"}
var seniorKeywords = []string{"senior", "experienced", "chief", "head ", "lead ", "seasoned"}

var (
	// "at least 5 years", "minimum 3 years", "minimum of 6 months", "min. 2 yrs"
	explicitMinExpRe = regexp.MustCompile(`(?i)(?:at\s+least|minimum(?:\s+of)?|min\.?)\s*(\d+)\s*(years?|yrs?|months?)`)
	// "6 months minimum", "2 years minimum"
	trailingMinExpRe = regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?|months?)\s+minimum`)
	// "5+ years"
	plusExpRe = regexp.MustCompile(`(?i)(\d+)\s*\+\s*(years?|yrs?|months?)`)
	// "5 years experience", "18 months of experience"
	bareExpRe = regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?|months?)(?:\s+of)?\s+experience`)

	// "60m", "60 m", "60 metre", "60m+"
	sizeRe = regexp.MustCompile(`(?i)(\d{2,3})\s*m(?:etre|eter)?s?\+?`)
	// words near a size mention that mark it as prior exposure, not vessel size
	sizeExperienceCueRe = regexp.MustCompile(`(?i)experience|experienced|background|previous|prior|worked|history`)

	genderRe = regexp.MustCompile(`(?i)\b(female|male)\s+(?:only|candidates?|crew|applicants?|stew)`)

	preferCueRe = regexp.MustCompile(`(?i)prefer|preferred|ideally|nice\s+to\s+have|bonus|a\s+plus|advantageous`)

	salaryRe = regexp.MustCompile(`(?i)[€$£]\s?(\d[\d,]*(?:\.\d+)?)\s*(k)?`)
)

// ParseRequirements extracts the deterministic requirement set from a brief.
// Pure function; the AI parse may later enrich but never overwrite it.
func ParseRequirements(query string) types.ParsedRequirements {
	req := types.ParsedRequirements{}
	lower := strings.ToLower(query)

	for _, kw := range juniorKeywords {
		if strings.Contains(lower, kw) {
			req.IsJuniorRole = true
			break
		}
	}
	if !req.IsJuniorRole {
		for _, kw := range seniorKeywords {
			if strings.Contains(lower, kw) {
				req.IsSeniorRole = true
				break
			}
		}
	}

	req.MinExperienceMonths = parseMinExperienceMonths(query)

	// A stated minimum of a year or less reads as a junior listing even
	// without junior wording.
	if !req.IsJuniorRole && !req.IsSeniorRole && req.MinExperienceMonths > 0 && req.MinExperienceMonths <= 12 {
		req.IsJuniorRole = true
	}

	// A junior listing implies a ceiling: a 7-year veteran should not be
	// matched to a 6-month-experience brief.
	if req.IsJuniorRole {
		req.MaxExperienceMonths = impliedMaxMonths(req.MinExperienceMonths)
	}

	req.YachtSizeMeters, req.MinYachtSizeExperienceMeters = parseSizes(query)

	req.RequiredCerts, req.PreferredCerts = parseCerts(query)
	req.RequiredLicenses = taxonomy.FindLicensesInText(query)

	if m := genderRe.FindStringSubmatch(query); m != nil {
		req.RequiredGender = strings.ToLower(m[1])
	}

	req.SalaryTier = parseSalaryTier(query)

	return req
}

func parseMinExperienceMonths(query string) int {
	for _, re := range []*regexp.Regexp{explicitMinExpRe, trailingMinExpRe, plusExpRe, bareExpRe} {
		if m := re.FindStringSubmatch(query); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if strings.HasPrefix(strings.ToLower(m[2]), "month") {
				return n
			}
			return n * 12
		}
	}
	return 0
}

// impliedMaxMonths derives the experience ceiling for junior listings:
// three years past the stated minimum, never below three years total.
func impliedMaxMonths(minMonths int) int {
	max := minMonths + 36
	if max < 36 {
		max = 36
	}
	return max
}

// parseSizes separates the job's vessel size from the candidate's required
// prior size exposure. A size mention with an experience cue within the
// surrounding 40 characters counts as required exposure.
func parseSizes(query string) (vesselSize, sizeExperience float64) {
	for _, loc := range sizeRe.FindAllStringSubmatchIndex(query, -1) {
		meters, err := strconv.ParseFloat(query[loc[2]:loc[3]], 64)
		if err != nil || meters < 10 || meters > 200 {
			continue
		}

		start := loc[0] - 40
		if start < 0 {
			start = 0
		}
		end := loc[1] + 40
		if end > len(query) {
			end = len(query)
		}
		window := query[start:end]

		if sizeExperienceCueRe.MatchString(window) {
			if meters > sizeExperience {
				sizeExperience = meters
			}
		} else if meters > vesselSize {
			vesselSize = meters
		}
	}
	return vesselSize, sizeExperience
}

// parseCerts finds certification mentions and classifies each as preferred
// when a preference cue appears shortly before the mention or directly
// after it, covering both "preferred: WSET" and "WSET preferred".
func parseCerts(query string) (required, preferred []string) {
	certs, offsets := taxonomy.FindCertsInText(query)
	for _, cert := range certs {
		offset := offsets[cert]
		start := offset - 40
		if start < 0 {
			start = 0
		}
		end := offset + 20
		if end > len(query) {
			end = len(query)
		}
		if preferCueRe.MatchString(query[start:end]) {
			preferred = append(preferred, cert)
		} else {
			required = append(required, cert)
		}
	}
	return required, preferred
}

// parseSalaryTier maps a currency amount in the brief onto a coarse tier.
// Amounts are read as monthly; "k" suffixes multiply by 1000.
func parseSalaryTier(query string) string {
	m := salaryRe.FindStringSubmatch(query)
	if m == nil {
		return ""
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}
	if strings.EqualFold(m[2], "k") {
		amount *= 1000
	}
	switch {
	case amount >= 10000:
		return "premium"
	case amount >= 4500:
		return "standard"
	default:
		return "entry"
	}
}
