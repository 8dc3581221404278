package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/core/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	fixedNow time.Time
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewClientService(
		suite.mockRepo,
		services.WithClientClock(func() time.Time { return suite.fixedNow }),
	)
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		RUT:       "76.123.456-7",
		LegalName: "Agrosuper S.A.",
		Region:    "O'Higgins",
		Contacts: []dto.ContactRequest{{
			Name:            "María González",
			Role:            "Gerente RRHH",
			Email:           "m.gonzalez@agrosuper.cl",
			IsDecisionMaker: true,
		}},
	}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.RUT == req.RUT && c.LegalName == req.LegalName &&
			len(c.Contacts) == 1 && c.Contacts[0].ContactID != "" &&
			c.CreatedBy == "tester"
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.Equal(req.RUT, client.RUT)
	suite.Equal(req.LegalName, client.LegalName)
	suite.Len(client.Contacts, 1)
	suite.Equal(suite.fixedNow, client.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_SaveError() {
	ctx := context.Background()
	req := dto.CreateClientRequest{RUT: "76.123.456-7", LegalName: "Agrosuper S.A."}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(expectedErr).Once()

	client, err := suite.service.CreateClient(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, expectedErr)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_PartialUpdate() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{
		ClientID:  clientID,
		RUT:       "76.123.456-7",
		LegalName: "Agrosuper S.A.",
		Region:    "O'Higgins",
	}
	newName := "Agrosuper Comercializadora S.A."

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.LegalName == newName && c.Region == "O'Higgins" && c.LastUpdatedBy == "editor"
	})).Return(nil).Once()

	client, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{LegalName: &newName}, "editor")

	suite.Require().NoError(err)
	suite.Equal(newName, client.LegalName)
	suite.Equal("O'Higgins", client.Region)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeleteClient_Referenced() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockRepo.On("IsClientReferenced", ctx, clientID).Return(true, nil).Once()

	err := suite.service.DeleteClient(ctx, clientID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteClient")
}

func (suite *ClientServiceTestSuite) TestDeleteClient_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockRepo.On("IsClientReferenced", ctx, clientID).Return(false, nil).Once()
	suite.mockRepo.On("DeleteClient", ctx, clientID).Return(nil).Once()

	err := suite.service.DeleteClient(ctx, clientID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
