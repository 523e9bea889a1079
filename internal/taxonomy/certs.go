package taxonomy

import "strings"

// CertSpec describes one canonical certification and its textual synonyms.
// Critical certs are the ones a recruiter treats as non-negotiable for most
// yacht roles; premium certs mark a candidate as exceeding expectations.
type CertSpec struct {
	Canonical string
	Aliases   []string
	Critical  bool
	Premium   bool
}

// certTable is the canonical certification alias table. Order matters only
// for deterministic scanning; lookups are exact on the alias set.
var certTable = []CertSpec{
	{Canonical: "STCW", Aliases: []string{"stcw", "stcw 95", "stcw 2010", "stcw basic training", "basic safety training"}, Critical: true},
	{Canonical: "ENG1", Aliases: []string{"eng1", "eng 1", "eng-1", "seafarer medical"}, Critical: true},
	{Canonical: "Yachtmaster", Aliases: []string{"yachtmaster", "yacht master", "rya yachtmaster", "yachtmaster offshore", "yachtmaster ocean"}, Critical: true, Premium: true},
	{Canonical: "OOW", Aliases: []string{"oow", "officer of the watch", "oow 3000gt"}, Premium: true},
	{Canonical: "PDSD", Aliases: []string{"pdsd", "proficiency in designated security duties"}},
	{Canonical: "Powerboat Level 2", Aliases: []string{"powerboat level 2", "pb2", "rya powerboat"}},
	{Canonical: "PADI Divemaster", Aliases: []string{"padi divemaster", "divemaster", "dive master"}, Premium: true},
	{Canonical: "WSET", Aliases: []string{"wset", "wset level 2", "wset level 3", "wine & spirit education trust"}, Premium: true},
	{Canonical: "Silver Service", Aliases: []string{"silver service", "formal service", "butler service training"}},
	{Canonical: "Food Hygiene Level 2", Aliases: []string{"food hygiene", "food hygiene level 2", "food safety level 2"}},
	{Canonical: "Ship's Cook Certificate", Aliases: []string{"ship's cook", "ships cook certificate", "mca ship's cook"}, Premium: true},
	{Canonical: "HELM", Aliases: []string{"helm", "human element leadership and management"}},
	{Canonical: "AEC", Aliases: []string{"aec", "approved engine course"}},
	{Canonical: "First Aid", Aliases: []string{"first aid", "paediatric first aid", "stcw first aid"}},
	{Canonical: "Norland", Aliases: []string{"norland", "norland nanny", "norland college"}, Premium: true},
	{Canonical: "SIA", Aliases: []string{"sia", "sia licence", "sia license", "close protection licence"}},
}

var certByAlias = buildCertIndex()

func buildCertIndex() map[string]*CertSpec {
	index := make(map[string]*CertSpec)
	for i := range certTable {
		spec := &certTable[i]
		index[strings.ToLower(spec.Canonical)] = spec
		for _, alias := range spec.Aliases {
			index[alias] = spec
		}
	}
	return index
}

// CanonicalCert resolves a certification name or alias to its canonical tag.
func CanonicalCert(name string) (string, bool) {
	spec, ok := certByAlias[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return spec.Canonical, true
}

// FindCertsInText scans free text for certification mentions and returns
// the canonical tags in table order, deduplicated. The second return gives
// the byte offset of the first mention of each cert, for proximity checks
// such as preferred-vs-required classification.
func FindCertsInText(text string) ([]string, map[string]int) {
	lower := strings.ToLower(text)
	var found []string
	offsets := make(map[string]int)
	for i := range certTable {
		spec := &certTable[i]
		best := -1
		for _, alias := range spec.Aliases {
			if idx := strings.Index(lower, alias); idx >= 0 && (best < 0 || idx < best) {
				best = idx
			}
		}
		if best >= 0 {
			found = append(found, spec.Canonical)
			offsets[spec.Canonical] = best
		}
	}
	return found, offsets
}

// IsCriticalCert reports whether the canonical cert is treated as
// non-negotiable by the suitability scorer.
func IsCriticalCert(canonical string) bool {
	spec, ok := certByAlias[strings.ToLower(canonical)]
	return ok && spec.Critical
}

// IsPremiumCert reports whether the canonical cert qualifies for the
// excellence bonus.
func IsPremiumCert(canonical string) bool {
	spec, ok := certByAlias[strings.ToLower(canonical)]
	return ok && spec.Premium
}
