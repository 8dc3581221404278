package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/core/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// --- Test Suite ---
type ExecutionServiceTestSuite struct {
	suite.Suite
	mockExecutionRepo *MockExecutionRepository
	mockCourseRepo    *MockCourseRepository
	mockClientRepo    *MockClientRepository
	service           portssvc.ExecutionSvcFacade
	fixedNow          time.Time
}

func (suite *ExecutionServiceTestSuite) SetupTest() {
	suite.mockExecutionRepo = new(MockExecutionRepository)
	suite.mockCourseRepo = new(MockCourseRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewExecutionService(
		suite.mockExecutionRepo,
		suite.mockCourseRepo,
		suite.mockClientRepo,
		services.WithExecutionClock(func() time.Time { return suite.fixedNow }),
	)
}

// --- Test Cases ---

func (suite *ExecutionServiceTestSuite) TestCreateExecution_InheritsCourseDefaults() {
	ctx := context.Background()
	courseID := uuid.NewString()
	clientID := uuid.NewString()
	course := &domain.Course{
		CourseID:   courseID,
		SenceCode:  "1237994321",
		Modality:   domain.ModalitySyncOnline,
		TotalHours: 24,
	}
	req := dto.CreateExecutionRequest{CourseID: courseID, ClientID: clientID}

	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(course, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockExecutionRepo.On("SaveExecution", ctx, mock.MatchedBy(func(e domain.Execution) bool {
		return e.Status == domain.ExecutionPlanned &&
			e.SenceCode == course.SenceCode &&
			e.Config.Modality == course.Modality &&
			e.Config.TotalHours == course.TotalHours
	})).Return(nil).Once()

	execution, err := suite.service.CreateExecution(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(execution)
	suite.Equal(domain.ExecutionPlanned, execution.Status)
	suite.mockExecutionRepo.AssertExpectations(suite.T())
}

func (suite *ExecutionServiceTestSuite) TestTransitionExecution_PlannedToInProgress() {
	ctx := context.Background()
	executionID := uuid.NewString()
	existing := &domain.Execution{ExecutionID: executionID, Status: domain.ExecutionPlanned}

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()
	suite.mockExecutionRepo.On("UpdateExecution", ctx, mock.MatchedBy(func(e domain.Execution) bool {
		return e.Status == domain.ExecutionInProgress
	})).Return(nil).Once()

	execution, err := suite.service.TransitionExecution(ctx, executionID, domain.ExecutionInProgress, "tester")

	suite.Require().NoError(err)
	suite.Equal(domain.ExecutionInProgress, execution.Status)
	suite.mockExecutionRepo.AssertExpectations(suite.T())
}

func (suite *ExecutionServiceTestSuite) TestTransitionExecution_CompletedIsTerminal() {
	ctx := context.Background()
	executionID := uuid.NewString()
	existing := &domain.Execution{ExecutionID: executionID, Status: domain.ExecutionCompleted}

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()

	execution, err := suite.service.TransitionExecution(ctx, executionID, domain.ExecutionInProgress, "tester")

	suite.Require().Error(err)
	suite.Nil(execution)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockExecutionRepo.AssertNotCalled(suite.T(), "UpdateExecution")
}

func (suite *ExecutionServiceTestSuite) TestAddParticipant_SAGCourseStartsPending() {
	ctx := context.Background()
	executionID := uuid.NewString()
	courseID := uuid.NewString()
	existing := &domain.Execution{ExecutionID: executionID, CourseID: courseID}
	course := &domain.Course{CourseID: courseID, RequiresSAG: true}
	req := dto.AddParticipantRequest{RUT: "12.345.678-9", FirstName: "Juan", LastName: "Pérez"}

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(course, nil).Once()
	suite.mockExecutionRepo.On("SaveParticipant", ctx, executionID, mock.MatchedBy(func(p domain.Participant) bool {
		return p.RUT == req.RUT && p.SAGStatus == domain.SAGPending
	})).Return(nil).Once()

	participant, err := suite.service.AddParticipant(ctx, executionID, req, "tester")

	suite.Require().NoError(err)
	suite.Equal(domain.SAGPending, participant.SAGStatus)
	suite.mockExecutionRepo.AssertExpectations(suite.T())
}

func (suite *ExecutionServiceTestSuite) TestAddParticipant_NonSAGCourseNotApplicable() {
	ctx := context.Background()
	executionID := uuid.NewString()
	courseID := uuid.NewString()
	existing := &domain.Execution{ExecutionID: executionID, CourseID: courseID}
	course := &domain.Course{CourseID: courseID, RequiresSAG: false}
	req := dto.AddParticipantRequest{RUT: "12.345.678-9", FirstName: "Juan", LastName: "Pérez"}

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(course, nil).Once()
	suite.mockExecutionRepo.On("SaveParticipant", ctx, executionID, mock.MatchedBy(func(p domain.Participant) bool {
		return p.SAGStatus == domain.SAGNotApplicable
	})).Return(nil).Once()

	participant, err := suite.service.AddParticipant(ctx, executionID, req, "tester")

	suite.Require().NoError(err)
	suite.Equal(domain.SAGNotApplicable, participant.SAGStatus)
}

func (suite *ExecutionServiceTestSuite) TestAddParticipant_DuplicateRUT() {
	ctx := context.Background()
	executionID := uuid.NewString()
	courseID := uuid.NewString()
	existing := &domain.Execution{
		ExecutionID:  executionID,
		CourseID:     courseID,
		Participants: []domain.Participant{{RUT: "12.345.678-9"}},
	}
	req := dto.AddParticipantRequest{RUT: "12.345.678-9", FirstName: "Juan", LastName: "Pérez"}

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(&domain.Course{CourseID: courseID}, nil).Once()

	participant, err := suite.service.AddParticipant(ctx, executionID, req, "tester")

	suite.Require().Error(err)
	suite.Nil(participant)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockExecutionRepo.AssertNotCalled(suite.T(), "SaveParticipant")
}

func (suite *ExecutionServiceTestSuite) TestUpdateSAGDocument_RecomputesStatus() {
	ctx := context.Background()
	executionID := uuid.NewString()
	courseID := uuid.NewString()
	participantID := uuid.NewString()
	examDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	participant := domain.Participant{
		ParticipantID: participantID,
		RUT:           "12.345.678-9",
		SAGDocuments: domain.SAGRecord{
			MedicalCertificate: domain.SAGDocument{URL: "https://docs/cert.pdf", Valid: true},
			PowerOfAttorney:    domain.SAGDocument{URL: "https://docs/poder.pdf", Valid: true},
		},
		SAGStatus: domain.SAGIncomplete,
	}
	existing := &domain.Execution{
		ExecutionID:  executionID,
		CourseID:     courseID,
		Participants: []domain.Participant{participant},
	}
	course := &domain.Course{CourseID: courseID, RequiresSAG: true}

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(course, nil).Once()
	suite.mockExecutionRepo.On("UpdateParticipant", ctx, executionID, mock.MatchedBy(func(p domain.Participant) bool {
		return p.SAGStatus == domain.SAGComplete &&
			p.SAGDocuments.Cholinesterase.ExpiryDate != nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSAGDocument(ctx, executionID, participantID, domain.SlotCholinesterase, dto.UpdateSAGDocumentRequest{
		URL:      "https://docs/colinesterasa.pdf",
		ExamDate: &examDate,
		Valid:    true,
	}, "tester")

	suite.Require().NoError(err)
	suite.Equal(domain.SAGComplete, updated.SAGStatus)
	suite.Require().NotNil(updated.SAGDocuments.Cholinesterase.ExpiryDate)
	suite.Equal(examDate.AddDate(0, 0, 90), *updated.SAGDocuments.Cholinesterase.ExpiryDate)
	suite.mockExecutionRepo.AssertExpectations(suite.T())
}

func (suite *ExecutionServiceTestSuite) TestUpdateSAGDocument_UnknownSlot() {
	ctx := context.Background()
	executionID := uuid.NewString()
	courseID := uuid.NewString()
	participantID := uuid.NewString()
	existing := &domain.Execution{
		ExecutionID:  executionID,
		CourseID:     courseID,
		Participants: []domain.Participant{{ParticipantID: participantID}},
	}

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(&domain.Course{CourseID: courseID}, nil).Once()

	updated, err := suite.service.UpdateSAGDocument(ctx, executionID, participantID, "PASSPORT", dto.UpdateSAGDocumentRequest{}, "tester")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExecutionServiceTestSuite) TestUpdateParticipant_AttendanceOutOfRange() {
	ctx := context.Background()
	executionID := uuid.NewString()
	participantID := uuid.NewString()
	existing := &domain.Execution{
		ExecutionID:  executionID,
		Participants: []domain.Participant{{ParticipantID: participantID}},
	}
	badPct := 120.0

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateParticipant(ctx, executionID, participantID, dto.UpdateParticipantRequest{
		AttendancePct: &badPct,
	}, "tester")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExecutionRepo.AssertNotCalled(suite.T(), "UpdateParticipant")
}

// --- Run Suite ---
func TestExecutionService(t *testing.T) {
	suite.Run(t, new(ExecutionServiceTestSuite))
}
