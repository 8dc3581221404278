package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/models"
)

// ToModelExecution converts a domain Execution to a model row, serializing the
// session list into its JSONB column.
func ToModelExecution(d domain.Execution) (models.Execution, error) {
	sessions := d.Config.Sessions
	if sessions == nil {
		sessions = []domain.Session{}
	}
	sessionsJSON, err := json.Marshal(sessions)
	if err != nil {
		return models.Execution{}, fmt.Errorf("failed to marshal sessions: %w", err)
	}
	return models.Execution{
		ExecutionID:      d.ExecutionID,
		CourseID:         d.CourseID,
		ClientID:         d.ClientID,
		SenceCode:        d.SenceCode,
		ActionIDs:        d.ActionIDs,
		Status:           string(d.Status),
		Modality:         string(d.Config.Modality),
		TotalHours:       d.Config.TotalHours,
		Sessions:         sessionsJSON,
		Location:         d.Config.Location,
		PlatformURL:      d.Config.PlatformURL,
		InstructorID:     d.InstructorID,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Schedule:         d.Schedule,
		DirectCostTxnIDs: d.DirectCostTxnIDs,
		QuoteID:          d.QuoteID,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainExecution converts a model Execution plus its participant rows to a
// domain Execution.
func ToDomainExecution(m models.Execution, participants []models.Participant) (domain.Execution, error) {
	var sessions []domain.Session
	if len(m.Sessions) > 0 {
		if err := json.Unmarshal(m.Sessions, &sessions); err != nil {
			return domain.Execution{}, fmt.Errorf("failed to unmarshal sessions for execution %s: %w", m.ExecutionID, err)
		}
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	domainParticipants := make([]domain.Participant, len(participants))
	for i, p := range participants {
		dp, err := ToDomainParticipant(p)
		if err != nil {
			return domain.Execution{}, err
		}
		domainParticipants[i] = dp
	}

	actionIDs := m.ActionIDs
	if actionIDs == nil {
		actionIDs = []string{}
	}
	directCostTxnIDs := m.DirectCostTxnIDs
	if directCostTxnIDs == nil {
		directCostTxnIDs = []string{}
	}

	return domain.Execution{
		ExecutionID: m.ExecutionID,
		CourseID:    m.CourseID,
		ClientID:    m.ClientID,
		SenceCode:   m.SenceCode,
		ActionIDs:   actionIDs,
		Status:      domain.ExecutionStatus(m.Status),
		Config: domain.ExecutionConfig{
			Modality:    domain.CourseModality(m.Modality),
			TotalHours:  m.TotalHours,
			Sessions:    sessions,
			Location:    m.Location,
			PlatformURL: m.PlatformURL,
		},
		InstructorID:     m.InstructorID,
		Participants:     domainParticipants,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		Schedule:         m.Schedule,
		DirectCostTxnIDs: directCostTxnIDs,
		QuoteID:          m.QuoteID,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelParticipant converts a domain Participant to a model row, serializing
// the SAG document slots into their JSONB column.
func ToModelParticipant(d domain.Participant, executionID string) (models.Participant, error) {
	sagJSON, err := json.Marshal(d.SAGDocuments)
	if err != nil {
		return models.Participant{}, fmt.Errorf("failed to marshal SAG documents: %w", err)
	}
	return models.Participant{
		ParticipantID:  d.ParticipantID,
		ExecutionID:    executionID,
		RUT:            d.RUT,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		EducationLevel: d.EducationLevel,
		AttendancePct:  d.AttendancePct,
		FinalGrade:     d.FinalGrade,
		SAGDocuments:   sagJSON,
		SAGStatus:      string(d.SAGStatus),
	}, nil
}

// ToDomainParticipant converts a model Participant row to a domain Participant.
func ToDomainParticipant(m models.Participant) (domain.Participant, error) {
	var sagDocs domain.SAGRecord
	if len(m.SAGDocuments) > 0 {
		if err := json.Unmarshal(m.SAGDocuments, &sagDocs); err != nil {
			return domain.Participant{}, fmt.Errorf("failed to unmarshal SAG documents for participant %s: %w", m.ParticipantID, err)
		}
	}
	return domain.Participant{
		ParticipantID:  m.ParticipantID,
		RUT:            m.RUT,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		EducationLevel: m.EducationLevel,
		AttendancePct:  m.AttendancePct,
		FinalGrade:     m.FinalGrade,
		SAGDocuments:   sagDocs,
		SAGStatus:      domain.SAGStatus(m.SAGStatus),
	}, nil
}
