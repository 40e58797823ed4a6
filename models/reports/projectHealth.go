package reports

import "fmt"

type HealthStatus string

const (
	HealthStatusHealthy           HealthStatus = "HEALTHY"
	HealthStatusAttentionRequired HealthStatus = "ATTENTION_REQUIRED"
	HealthStatusCritical          HealthStatus = "CRITICAL"
)

const healthyReason = "All operational parameters are within acceptable range."

type ProjectHealth struct {
	Status  HealthStatus `json:"status"`
	Reasons []string     `json:"reasons"`
}

// HealthInputs are the counts the health rules look at.
type HealthInputs struct {
	ExpiredCertificates      int
	ExpiringCertificates     int
	OverdueMaintenance       int
	MaintenanceDueSoon       int
	VesselsWithoutActiveCrew int
}

func HealthInputsOf(certs CertificateStats, maintenance MaintenanceStats, crew CrewStats) HealthInputs {
	return HealthInputs{
		ExpiredCertificates:      certs.Expired,
		ExpiringCertificates:     certs.ExpiringSoon,
		OverdueMaintenance:       maintenance.Overdue,
		MaintenanceDueSoon:       maintenance.DueSoon,
		VesselsWithoutActiveCrew: crew.VesselsWithoutActiveCrew,
	}
}

type healthRule struct {
	tier   HealthStatus
	count  func(HealthInputs) int
	reason string
}

// healthTiers is the evaluation order. The first tier with a matching rule
// decides the status and later tiers are not looked at.
var healthTiers = []HealthStatus{HealthStatusCritical, HealthStatusAttentionRequired}

var healthRules = []healthRule{
	{HealthStatusCritical, func(in HealthInputs) int { return in.ExpiredCertificates }, "%d expired certificates"},
	{HealthStatusCritical, func(in HealthInputs) int { return in.OverdueMaintenance }, "%d overdue maintenance tasks"},
	{HealthStatusCritical, func(in HealthInputs) int { return in.VesselsWithoutActiveCrew }, "%d vessels without active crew"},
	{HealthStatusAttentionRequired, func(in HealthInputs) int { return in.ExpiringCertificates }, "%d certificates expiring soon"},
	{HealthStatusAttentionRequired, func(in HealthInputs) int { return in.MaintenanceDueSoon }, "%d maintenance due soon"},
}

func ComposeProjectHealth(in HealthInputs) ProjectHealth {
	for _, tier := range healthTiers {
		var reasons []string
		for _, rule := range healthRules {
			if rule.tier != tier {
				continue
			}
			if n := rule.count(in); n > 0 {
				reasons = append(reasons, fmt.Sprintf(rule.reason, n))
			}
		}
		if len(reasons) > 0 {
			return ProjectHealth{Status: tier, Reasons: reasons}
		}
	}
	return ProjectHealth{Status: HealthStatusHealthy, Reasons: []string{healthyReason}}
}
