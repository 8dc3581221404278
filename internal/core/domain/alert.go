package domain

import "time"

// AlertKind classifies an operational alert.
type AlertKind string

const (
	AlertSAG         AlertKind = "SAG"
	AlertSENCE       AlertKind = "SENCE"
	AlertFinancial   AlertKind = "FINANCIAL"
	AlertOperational AlertKind = "OPERATIONAL"
)

// AlertPriority orders alerts for display.
type AlertPriority string

const (
	PriorityHigh   AlertPriority = "HIGH"
	PriorityMedium AlertPriority = "MEDIUM"
	PriorityLow    AlertPriority = "LOW"
)

// Alert is an informational record surfaced on the dashboard. Alerts are
// stored explicitly and dismissed by deletion.
type Alert struct {
	AlertID    string        `json:"alertID"` // Primary Key (UUID)
	Kind       AlertKind     `json:"kind"`
	Message    string        `json:"message"`
	Date       time.Time     `json:"date"`
	Priority   AlertPriority `json:"priority"`
	EntityID   string        `json:"entityID,omitempty"` // Optional execution/transaction reference
	EntityType string        `json:"entityType,omitempty"`
	AuditFields
}
