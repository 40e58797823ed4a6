package reports

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestComposeProjectHealth(t *testing.T) {
	cases := []struct {
		name    string
		in      HealthInputs
		status  HealthStatus
		reasons []string
	}{
		{
			name:    "empty",
			in:      HealthInputs{},
			status:  HealthStatusHealthy,
			reasons: []string{"All operational parameters are within acceptable range."},
		},
		{
			name:    "attention only",
			in:      HealthInputs{ExpiringCertificates: 2, MaintenanceDueSoon: 1},
			status:  HealthStatusAttentionRequired,
			reasons: []string{"2 certificates expiring soon", "1 maintenance due soon"},
		},
		{
			name:    "critical hides attention",
			in:      HealthInputs{ExpiredCertificates: 1, VesselsWithoutActiveCrew: 3, ExpiringCertificates: 4, MaintenanceDueSoon: 2},
			status:  HealthStatusCritical,
			reasons: []string{"1 expired certificates", "3 vessels without active crew"},
		},
		{
			name:    "overdue maintenance",
			in:      HealthInputs{OverdueMaintenance: 1},
			status:  HealthStatusCritical,
			reasons: []string{"1 overdue maintenance tasks"},
		},
	}
	for _, tc := range cases {
		got := ComposeProjectHealth(tc.in)
		if got.Status != tc.status {
			t.Fatalf("%s: expected status %s, got %s", tc.name, tc.status, got.Status)
		}
		if strings.Join(got.Reasons, "|") != strings.Join(tc.reasons, "|") {
			t.Fatalf("%s: expected reasons %v, got %v", tc.name, tc.reasons, got.Reasons)
		}
	}
}

func TestHealthPrecedenceProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	count := gen.IntRange(0, 5)

	properties.Property("critical tier never reports attention reasons", prop.ForAll(
		func(expired, overdue, uncrewed, expiring, dueSoon int) bool {
			in := HealthInputs{
				ExpiredCertificates:      expired,
				OverdueMaintenance:       overdue,
				VesselsWithoutActiveCrew: uncrewed,
				ExpiringCertificates:     expiring,
				MaintenanceDueSoon:       dueSoon,
			}
			got := ComposeProjectHealth(in)
			critical := expired+overdue+uncrewed > 0
			attention := expiring+dueSoon > 0
			switch {
			case critical:
				if got.Status != HealthStatusCritical {
					return false
				}
				for _, r := range got.Reasons {
					if strings.Contains(r, "soon") {
						return false
					}
				}
				return len(got.Reasons) > 0
			case attention:
				return got.Status == HealthStatusAttentionRequired && len(got.Reasons) > 0
			default:
				return got.Status == HealthStatusHealthy && len(got.Reasons) == 1
			}
		},
		count, count, count, count, count,
	))

	properties.TestingRun(t)
}
