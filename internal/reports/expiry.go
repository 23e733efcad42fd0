package reports

import (
	"fmt"
	"sort"
	"time"

	"rentfolio/internal/dateutils"
	"rentfolio/internal/models"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"
)

// ExpiryBucket classifies how soon an active agreement runs out.
type ExpiryBucket string

const (
	// BucketExpired marks agreements whose end date has passed.
	BucketExpired ExpiryBucket = "EXPIRED"
	// BucketLater marks agreements beyond the widest configured window.
	BucketLater ExpiryBucket = "LATER"
)

// DefaultExpiryWindows are the day thresholds used when none are
// configured.
var DefaultExpiryWindows = []int{30, 60, 90}

// ExpiryRow is one active agreement classified against the as-of date.
type ExpiryRow struct {
	AgreementID     string
	AgreementNumber string
	Property        string
	Tenant          string
	Owner           string
	EndDate         time.Time
	DaysLeft        int
	Bucket          ExpiryBucket
}

// windowBucket names the bucket for a day threshold, e.g. "WITHIN_30".
func windowBucket(days int) ExpiryBucket {
	return ExpiryBucket(fmt.Sprintf("WITHIN_%d", days))
}

// AgreementExpiry classifies every ACTIVE agreement into expiry buckets
// relative to asOf. Windows must be increasing day counts; nil selects
// DefaultExpiryWindows. Rows are ordered soonest-ending first.
func AgreementExpiry(s *state.AppState, asOf time.Time, windows []int) []ExpiryRow {
	if len(windows) == 0 {
		windows = DefaultExpiryWindows
	}
	res := resolver.New(s)

	var rows []ExpiryRow
	for _, a := range s.RentalAgreements {
		if a.Status != models.AgreementActive {
			continue
		}
		days := dateutils.DaysUntil(asOf, a.EndDate)
		bucket := BucketLater
		if days < 0 {
			bucket = BucketExpired
		} else {
			for _, w := range windows {
				if days <= w {
					bucket = windowBucket(w)
					break
				}
			}
		}
		rows = append(rows, ExpiryRow{
			AgreementID:     a.ID,
			AgreementNumber: a.AgreementNumber,
			Property:        res.PropertyName(a.PropertyID),
			Tenant:          res.ContactName(a.TenantID),
			Owner:           res.OwnerNameForAgreement(a),
			EndDate:         a.EndDate,
			DaysLeft:        days,
			Bucket:          bucket,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EndDate.Before(rows[j].EndDate)
	})
	return rows
}
