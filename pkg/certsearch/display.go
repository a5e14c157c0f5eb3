package certsearch

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/function61/gokit/jsonfile"
	"github.com/scylladb/termtables"
)

const (
	ansiGreen = "\x1b[92m"
	ansiReset = "\x1b[0m"
)

// Display writes the human-readable report. Alternative names that themselves
// contain the search string are rendered green with a trailing check mark so
// the operator can see which name caused the hit.
func Display(out io.Writer, certs []FoundCertificate, domainSearch string) {
	if len(certs) == 0 {
		fmt.Fprintf(out, "No certificates found containing '%s'\n", domainSearch)
		return
	}

	fmt.Fprintf(out, "\nFound %d certificate(s) containing '%s':\n", len(certs), domainSearch)
	fmt.Fprintln(out, strings.Repeat("=", 80))

	needle := strings.ToLower(domainSearch)
	now := time.Now()

	for idx, cert := range certs {
		fmt.Fprintf(out, "\nCertificate %d:\n", idx+1)
		fmt.Fprintf(out, "  ARN: %s\n", cert.Arn)
		fmt.Fprintf(out, "  Domain Name: %s\n", orNotAvailable(cert.DomainName))
		fmt.Fprintf(out, "  Status: %s\n", cert.Status)

		if len(cert.SubjectAlternativeNames) > 0 {
			fmt.Fprintln(out, "  Subject Alternative Names:")

			for _, alternativeName := range cert.SubjectAlternativeNames {
				if strings.Contains(strings.ToLower(alternativeName), needle) {
					fmt.Fprintf(out, "    - %s%s ✓%s\n", ansiGreen, alternativeName, ansiReset)
				} else {
					fmt.Fprintf(out, "    - %s\n", alternativeName)
				}
			}
		}

		if cert.NotBefore != nil {
			fmt.Fprintf(out, "  Valid From: %s\n", cert.NotBefore.Format(time.RFC3339))
		}
		if cert.NotAfter != nil {
			annotation := ""
			if expiresSoon(cert.NotAfter, now) {
				annotation = " (expires soon)"
			}

			fmt.Fprintf(out, "  Valid Until: %s%s\n", cert.NotAfter.Format(time.RFC3339), annotation)
		}

		if cert.Issuer != "" {
			fmt.Fprintf(out, "  Issuer: %s\n", cert.Issuer)
		}

		fmt.Fprintln(out, strings.Repeat("-", 40))
	}
}

// one line per certificate, for when the full report is too chatty
func RenderTable(out io.Writer, certs []FoundCertificate) {
	tbl := termtables.CreateTable()
	tbl.AddHeaders("ARN", "Domain", "Status", "Expires")

	for _, cert := range certs {
		expires := "-"
		if cert.NotAfter != nil {
			expires = cert.NotAfter.Format("2006-01-02")
		}

		tbl.AddRow(cert.Arn, orNotAvailable(cert.DomainName), cert.Status, expires)
	}

	fmt.Fprint(out, tbl.Render())
}

func DisplayJson(out io.Writer, certs []FoundCertificate) error {
	return jsonfile.Marshal(out, certs)
}

func orNotAvailable(value string) string {
	if value == "" {
		return "(not available)"
	}

	return value
}
