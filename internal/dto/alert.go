package dto

import (
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// CreateAlertRequest defines the payload for creating a dashboard alert.
type CreateAlertRequest struct {
	Kind       string    `json:"kind" binding:"required,oneof=SAG SENCE FINANCIAL OPERATIONAL"`
	Message    string    `json:"message" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Priority   string    `json:"priority" binding:"required,oneof=HIGH MEDIUM LOW"`
	EntityID   string    `json:"entityID"`
	EntityType string    `json:"entityType"`
}

// AlertResponse defines the data returned for an alert.
type AlertResponse struct {
	AlertID    string    `json:"alertID"`
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	Priority   string    `json:"priority"`
	EntityID   string    `json:"entityID,omitempty"`
	EntityType string    `json:"entityType,omitempty"`
}

// ToAlertResponse converts a domain.Alert to AlertResponse.
func ToAlertResponse(a *domain.Alert) AlertResponse {
	return AlertResponse{
		AlertID:    a.AlertID,
		Kind:       string(a.Kind),
		Message:    a.Message,
		Date:       a.Date,
		Priority:   string(a.Priority),
		EntityID:   a.EntityID,
		EntityType: a.EntityType,
	}
}

// ToAlertResponses converts a slice of domain.Alert to responses.
func ToAlertResponses(as []domain.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(as))
	for i := range as {
		responses[i] = ToAlertResponse(&as[i])
	}
	return responses
}
