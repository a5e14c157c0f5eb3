package certsearch

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/acm"
	"github.com/function61/gokit/logex"
)

// Search walks every certificate visible to the client and returns the ones
// whose alternative names or subject contain domainSearch (case-insensitive
// substring containment - not a glob, not a regex). An empty domainSearch
// therefore matches everything. Result order follows ACM's pagination order.
//
// A describe failure for an individual certificate is logged and that
// certificate skipped; a failure of the listing itself is returned as an
// error so the caller can tell "no matches" apart from "could not reach ACM".
func Search(
	ctx context.Context,
	client ACMClient,
	domainSearch string,
	logger *log.Logger,
) ([]FoundCertificate, error) {
	logl := logex.Levels(logger)

	needle := strings.ToLower(domainSearch)

	found := []FoundCertificate{}

	processPage := func(page *acm.ListCertificatesOutput, lastPage bool) bool {
		for _, summary := range page.CertificateSummaryList {
			arn := aws.StringValue(summary.CertificateArn)

			describeOutput, err := client.DescribeCertificateWithContext(ctx, &acm.DescribeCertificateInput{
				CertificateArn: summary.CertificateArn,
			})
			if err != nil {
				logl.Error.Printf("DescribeCertificate %s: %v", arn, err)
				continue
			}

			cert := describeOutput.Certificate

			alternativeNames := aws.StringValueSlice(cert.SubjectAlternativeNames)

			foundInDomains := false
			for _, alternativeName := range alternativeNames {
				if strings.Contains(strings.ToLower(alternativeName), needle) {
					foundInDomains = true
					break
				}
			}

			foundInSubject := strings.Contains(strings.ToLower(aws.StringValue(cert.Subject)), needle)

			if !foundInDomains && !foundInSubject {
				continue
			}

			found = append(found, FoundCertificate{
				Arn:                     arn,
				DomainName:              aws.StringValue(cert.DomainName),
				SubjectAlternativeNames: alternativeNames,
				Status:                  aws.StringValue(cert.Status),
				NotBefore:               cert.NotBefore,
				NotAfter:                cert.NotAfter,
				Issuer:                  aws.StringValue(cert.Issuer),
				FoundInDomains:          foundInDomains,
				FoundInSubject:          foundInSubject,
			})
		}

		return true // keep paginating
	}

	if err := client.ListCertificatesPagesWithContext(ctx, &acm.ListCertificatesInput{}, processPage); err != nil {
		return nil, fmt.Errorf("ListCertificates: %w", err)
	}

	return found, nil
}
