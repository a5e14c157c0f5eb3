package certsearch

import (
	"time"
)

// one month, same window operators usually renew within
const expiryWarningWindow = 30 * 24 * time.Hour

// unknown expiry never warns. already-expired counts as "soon".
func expiresSoon(notAfter *time.Time, now time.Time) bool {
	if notAfter == nil {
		return false
	}

	return notAfter.Before(now.Add(expiryWarningWindow))
}
