package osv

import (
	"strings"

	"github.com/google/osv-scanner/pkg/models"
	gocvss30 "github.com/pandatix/go-cvss/30"
	gocvss31 "github.com/pandatix/go-cvss/31"
	logger "github.com/sirupsen/logrus"
)

// highestScore returns the highest CVSS v3 base score found on the vulnerability
// or any of its affected entries. Unscored vulnerabilities score 0.
func highestScore(vuln models.Vulnerability) float64 {
	severities := append([]models.Severity{}, vuln.Severity...)
	for _, affected := range vuln.Affected {
		severities = append(severities, affected.Severity...)
	}

	var highest float64
	for _, severity := range severities {
		if severity.Type != models.SeverityCVSSV3 {
			continue
		}
		score, ok := BaseScore(severity.Score)
		if ok && score > highest {
			highest = score
		}
	}
	return highest
}

// BaseScore computes the base score of a CVSS 3.0 or 3.1 vector string.
func BaseScore(vector string) (float64, bool) {
	switch {
	case strings.HasPrefix(vector, "CVSS:3.1/"):
		cvss, err := gocvss31.ParseVector(vector)
		if err != nil {
			logger.Debugf("Invalid CVSS vector %q: %v", vector, err)
			return 0, false
		}
		return cvss.BaseScore(), true
	case strings.HasPrefix(vector, "CVSS:3.0/"):
		cvss, err := gocvss30.ParseVector(vector)
		if err != nil {
			logger.Debugf("Invalid CVSS vector %q: %v", vector, err)
			return 0, false
		}
		return cvss.BaseScore(), true
	default:
		return 0, false
	}
}
