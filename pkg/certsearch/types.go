// Searches AWS ACM (Certificate Manager) for certificates whose domains or
// subject contain a given substring.
package certsearch

import (
	"time"
)

// one search hit. timestamps and issuer can be missing from ACM's answer
// (nil / empty) - the display layer decides how to render the gaps.
type FoundCertificate struct {
	Arn                     string     `json:"arn"`
	DomainName              string     `json:"domain_name"`
	SubjectAlternativeNames []string   `json:"subject_alternative_names"`
	Status                  string     `json:"status"`
	NotBefore               *time.Time `json:"not_before,omitempty"`
	NotAfter                *time.Time `json:"not_after,omitempty"`
	Issuer                  string     `json:"issuer,omitempty"`
	FoundInDomains          bool       `json:"found_in_domains"`
	FoundInSubject          bool       `json:"found_in_subject"`
}
