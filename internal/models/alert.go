package models

import "time"

// Alert represents a dashboard alert row.
type Alert struct {
	AlertID    string    `db:"alert_id"`
	Kind       string    `db:"kind"`
	Message    string    `db:"message"`
	Date       time.Time `db:"date"`
	Priority   string    `db:"priority"`
	EntityID   string    `db:"entity_id"`
	EntityType string    `db:"entity_type"`
	AuditFields
}
