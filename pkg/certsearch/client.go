package certsearch

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/acm"
)

// the two ACM operations we consume. *acm.ACM satisfies this, tests substitute a fake.
type ACMClient interface {
	ListCertificatesPagesWithContext(
		ctx aws.Context,
		input *acm.ListCertificatesInput,
		fn func(*acm.ListCertificatesOutput, bool) bool,
		opts ...request.Option,
	) error
	DescribeCertificateWithContext(
		ctx aws.Context,
		input *acm.DescribeCertificateInput,
		opts ...request.Option,
	) (*acm.DescribeCertificateOutput, error)
}

var _ ACMClient = (*acm.ACM)(nil)

// empty region means whatever the shared AWS config or ENV vars resolve to
func NewClient(region string) (*acm.ACM, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}

	conf := aws.NewConfig()
	if region != "" {
		conf = conf.WithRegion(region)
	}

	return acm.New(sess, conf), nil
}
