// ABOUTME: Scoring heuristics for the credibility analyzer
// ABOUTME: Holds the reliable source list, sensationalism patterns and score adjustments

package analysis

import (
	"net/url"
	"regexp"
	"strings"
)

// scoreBase shifts the raw adjustment total before clamping so that a
// neutral article with nothing known about it lands mid-low
const scoreBase = 30

// Score adjustments applied by the analyzer
const (
	adjReliableSource      = -20
	adjUnknownSource       = 15
	adjPerSensationalMatch = 10
	adjNoCoverage          = 25
	adjStrongCorroboration = -15
	adjWeakCorroboration   = 10
	adjNoCorroboration     = 30
	adjSearchFailed        = 20
	adjShortContent        = 10
	adjAuthorKnown         = -5
	adjAuthorUnknown       = 10
	adjDateKnown           = -5
	adjDateUnknown         = 5
)

// minTrustedContentLength is the content length below which verification
// is considered incomplete
const minTrustedContentLength = 200

// defaultReliableDomains are outlets treated as trustworthy corroborators
var defaultReliableDomains = []string{
	"g1.globo.com",
	"folha.uol.com.br",
	"estadao.com.br",
	"bbc.com",
	"bbc.co.uk",
	"reuters.com",
	"apnews.com",
	"cnn.com",
	"nytimes.com",
	"theguardian.com",
	"uol.com.br",
	"oglobo.globo.com",
	"agenciabrasil.ebc.com.br",
}

// sensationalPatterns flag clickbait-style language in headlines and body text
var sensationalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bURGENT\b`),
	regexp.MustCompile(`(?i)\bBOMBSHELL\b`),
	regexp.MustCompile(`(?i)\bSCANDAL\b`),
	regexp.MustCompile(`(?i)\bSHOCKING\b`),
	regexp.MustCompile(`(?i)\bUNBELIEVABLE\b`),
	regexp.MustCompile(`(?i)\bEXCLUSIVE\b`),
	regexp.MustCompile(`(?i)\bREVELATION\b`),
	regexp.MustCompile(`(?i)\bSECRET\b`),
	regexp.MustCompile(`(?i)\bCONSPIRACY\b`),
}

// matchSensational returns the patterns found in the text, in pattern order
func matchSensational(text string) []string {
	var found []string
	for _, p := range sensationalPatterns {
		if m := p.FindString(text); m != "" {
			found = append(found, strings.ToUpper(m))
		}
	}
	return found
}

// hostnameOf extracts the lowercased host from a URL, without the www prefix.
// Returns empty for unparseable input.
func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// isReliableDomain reports whether the host belongs to a reliable outlet
func isReliableDomain(host string, reliable []string) bool {
	if host == "" {
		return false
	}
	for _, r := range reliable {
		if host == r || strings.HasSuffix(host, "."+r) || strings.Contains(host, r) {
			return true
		}
	}
	return false
}
