package domain

import "time"

// AuditDecision is the outcome recorded for a security decision.
type AuditDecision string

const (
	AuditAllowed AuditDecision = "allowed"
	AuditDenied  AuditDecision = "denied"
)

// AuditEvent is a single entry in the security audit trail: a login attempt
// or an authorization decision on a protected route.
type AuditEvent struct {
	Subject   string        `json:"subject" bson:"subject"`
	Action    string        `json:"action" bson:"action"`
	Resource  string        `json:"resource,omitempty" bson:"resource,omitempty"`
	Decision  AuditDecision `json:"decision" bson:"decision"`
	Reason    string        `json:"reason,omitempty" bson:"reason,omitempty"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
}
