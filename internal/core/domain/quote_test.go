package domain_test

import (
	"testing"
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestQuoteStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.QuoteStatus
		to     domain.QuoteStatus
		want   bool
	}{
		{name: "draft to sent", from: domain.QuoteDraft, to: domain.QuoteSent, want: true},
		{name: "draft to rejected", from: domain.QuoteDraft, to: domain.QuoteRejected, want: true},
		{name: "sent to approved", from: domain.QuoteSent, to: domain.QuoteApproved, want: true},
		{name: "sent to rejected", from: domain.QuoteSent, to: domain.QuoteRejected, want: true},
		{name: "draft to approved skips sent", from: domain.QuoteDraft, to: domain.QuoteApproved, want: false},
		{name: "approved is terminal", from: domain.QuoteApproved, to: domain.QuoteSent, want: false},
		{name: "rejected is terminal", from: domain.QuoteRejected, to: domain.QuoteDraft, want: false},
		{name: "no self transition", from: domain.QuoteSent, to: domain.QuoteSent, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestQuoteStatus_IsMutable(t *testing.T) {
	assert.True(t, domain.QuoteDraft.IsMutable())
	assert.True(t, domain.QuoteSent.IsMutable())
	assert.False(t, domain.QuoteApproved.IsMutable())
	assert.False(t, domain.QuoteRejected.IsMutable())
}

func TestExecutionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.ExecutionStatus
		to   domain.ExecutionStatus
		want bool
	}{
		{name: "planned to in progress", from: domain.ExecutionPlanned, to: domain.ExecutionInProgress, want: true},
		{name: "planned to cancelled", from: domain.ExecutionPlanned, to: domain.ExecutionCancelled, want: true},
		{name: "in progress to completed", from: domain.ExecutionInProgress, to: domain.ExecutionCompleted, want: true},
		{name: "in progress to cancelled", from: domain.ExecutionInProgress, to: domain.ExecutionCancelled, want: true},
		{name: "planned cannot complete directly", from: domain.ExecutionPlanned, to: domain.ExecutionCompleted, want: false},
		{name: "completed is terminal", from: domain.ExecutionCompleted, to: domain.ExecutionInProgress, want: false},
		{name: "cancelled is terminal", from: domain.ExecutionCancelled, to: domain.ExecutionPlanned, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDeriveSAGStatus(t *testing.T) {
	examDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	validDoc := domain.SAGDocument{URL: "https://files.example.com/doc.pdf", ExamDate: &examDate, Valid: true}
	invalidDoc := domain.SAGDocument{URL: "https://files.example.com/doc.pdf", Valid: false}

	tests := []struct {
		name        string
		rec         domain.SAGRecord
		requiresSAG bool
		want        domain.SAGStatus
	}{
		{
			name:        "course without SAG requirement",
			rec:         domain.SAGRecord{Cholinesterase: validDoc},
			requiresSAG: false,
			want:        domain.SAGNotApplicable,
		},
		{
			name:        "nothing recorded yet",
			rec:         domain.SAGRecord{},
			requiresSAG: true,
			want:        domain.SAGPending,
		},
		{
			name: "all three valid",
			rec: domain.SAGRecord{
				Cholinesterase:     validDoc,
				MedicalCertificate: validDoc,
				PowerOfAttorney:    validDoc,
			},
			requiresSAG: true,
			want:        domain.SAGComplete,
		},
		{
			name: "partially recorded",
			rec: domain.SAGRecord{
				Cholinesterase: validDoc,
			},
			requiresSAG: true,
			want:        domain.SAGIncomplete,
		},
		{
			name: "recorded but invalid",
			rec: domain.SAGRecord{
				MedicalCertificate: invalidDoc,
			},
			requiresSAG: true,
			want:        domain.SAGIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DeriveSAGStatus(tt.rec, tt.requiresSAG))
		})
	}
}

func TestSAGRecord_Slot(t *testing.T) {
	rec := &domain.SAGRecord{}

	assert.Same(t, &rec.Cholinesterase, rec.Slot(domain.SlotCholinesterase))
	assert.Same(t, &rec.MedicalCertificate, rec.Slot(domain.SlotMedicalCertificate))
	assert.Same(t, &rec.PowerOfAttorney, rec.Slot(domain.SlotPowerOfAttorney))
	assert.Nil(t, rec.Slot(domain.SAGDocumentSlot("UNKNOWN")))
}
