//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/handler/api"
	reqdto "queue-engine/internal/handler/dto/request"
	resdto "queue-engine/internal/handler/dto/response"
	"queue-engine/internal/handler/middleware"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/commands"
	"queue-engine/tests/common/builder"
	"queue-engine/tests/common/httptest"
	"queue-engine/tests/common/testutil"
	commandsmock "queue-engine/tests/mock/commands"
	queriesmock "queue-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTicketCommands
	mockQueries  *queriesmock.MockTicketQueries
	handler      *api.TicketHandler
	member       staff.Member
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTicketCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTicketQueries(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockCommands, s.mockQueries)
	s.member = mustMember(s.T(), uuid.New())

	staffAuth := fakeStaffAuth(s.member)

	s.router.POST("/queues/:id/tickets", s.handler.Issue)
	s.router.GET("/tickets/:id", s.handler.Get)
	s.router.POST("/tickets/:id/cancel", s.handler.CustomerCancel)
	s.router.POST("/tickets/:id/feedback", s.handler.Feedback)
	s.router.POST("/business/tickets/:id/start", staffAuth, s.handler.Start)
	s.router.POST("/business/tickets/:id/complete", staffAuth, s.handler.Complete)
	s.router.POST("/business/tickets/:id/cancel", staffAuth, s.handler.Cancel)
	s.router.POST("/unauthenticated/tickets/:id/start", s.handler.Start)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

type testCaseTicket struct {
	name       string
	mutate     testutil.Mutator
	expectCode int
}

// ================================================================================
// TestIssue
// ================================================================================

func (s *TicketHandlerTestSuite) TestIssue() {
	queueID := uuid.New()
	url := "/queues/" + queueID.String() + "/tickets"
	reqBody := builder.NewTicketBuilder().BuildIssueRequestDTO()
	result := &commands.IssueTicketResult{
		TicketID:             uuid.New(),
		QueueID:              queueID,
		TicketNumber:         6,
		OperatingDate:        "2025-03-10",
		Position:             3,
		EstimatedWaitMinutes: 30,
	}

	s.Run("success: returns 201 with number, position and wait", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), queueID, reqBody.ToCommand()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.IssueTicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.TicketID, body.TicketID)
		s.Equal(6, body.TicketNumber)
		s.Equal(3, body.Position)
		s.Equal(30, body.EstimatedWaitMinutes)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/tickets/" + result.TicketID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseTicket{
			{name: "missing customer_name", mutate: testutil.Without("customer_name"), expectCode: http.StatusBadRequest},
			{name: "missing customer_email", mutate: testutil.Without("customer_email"), expectCode: http.StatusBadRequest},
			{name: "malformed customer_email", mutate: testutil.Field("customer_email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Field("customer_name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 400 on malformed queue id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queues/not-a-uuid/tickets", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 409 with reason when queue is paused", func() {
		cause := errs.Mark(&queue.NotOperatingError{Reason: queue.ReasonPaused, Message: "queue is paused"}, errs.ErrQueueNotOperating)
		s.mockCommands.EXPECT().Issue(gomock.Any(), queueID, gomock.Any()).Return(nil, cause).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Queue is not operating")
		s.Contains(rec.Body.String(), `"reason":"paused"`)
	})

	s.Run("error: 409 when customer already holds an active ticket", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), queueID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("active ticket exists"), errs.ErrDuplicateClaim)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already holding an active claim")
	})

	s.Run("error: 404 when queue does not exist", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), queueID, gomock.Any()).Return(nil, errs.ErrQueueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Queue not found")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *TicketHandlerTestSuite) TestGet() {
	view := builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) {
		b.Number = 7
		b.Position = 4
		b.EstimatedWait = 40
	}).BuildViewQuery()

	s.Run("success: returns live position", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/"+view.ID.String(), nil, "")

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(7, body.TicketNumber)
		s.Equal(4, body.Position)
		s.Equal(40, body.EstimatedWaitMinutes)
		s.Equal("waiting", body.Status)
		s.WithinDuration(view.CreatedAt, body.CreatedAt, 0)
	})

	s.Run("error: 404 when ticket is unknown", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrTicketNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCustomerCancel / TestFeedback
// ================================================================================

func (s *TicketHandlerTestSuite) TestCustomerCancel() {
	ticketID := uuid.New()
	url := "/tickets/" + ticketID.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().CustomerCancel(gomock.Any(), ticketID, "ana@example.com").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CancelTicketRequest{CustomerEmail: "ana@example.com"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 403 when email does not match", func() {
		s.mockCommands.EXPECT().CustomerCancel(gomock.Any(), ticketID, "eve@example.com").
			Return(errs.Mark(errs.New("email mismatch"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CancelTicketRequest{CustomerEmail: "eve@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 400 without email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *TicketHandlerTestSuite) TestFeedback() {
	ticketID := uuid.New()
	url := "/tickets/" + ticketID.String() + "/feedback"
	reqBody := reqdto.TicketFeedbackRequest{CustomerEmail: "ana@example.com", Rating: 5, Feedback: "quick"}

	bound := []testCaseTicket{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusNoContent},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusNoContent},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "feedback length invalid (1001 chars)", mutate: testutil.Field("feedback", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "missing rating", mutate: testutil.Without("rating"), expectCode: http.StatusBadRequest},
	}

	for _, tc := range bound {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusNoContent {
				s.mockCommands.EXPECT().Rate(gomock.Any(), ticketID, gomock.Any()).Return(nil).Times(1)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 409 before completion", func() {
		s.mockCommands.EXPECT().Rate(gomock.Any(), ticketID, reqBody.ToCommand()).
			Return(errs.Mark(errs.New("ticket is waiting"), errs.ErrFeedbackNotAllowed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Feedback not allowed")
	})
}

// ================================================================================
// Staff transitions
// ================================================================================

func (s *TicketHandlerTestSuite) TestStaffTransitions() {
	ticketID := uuid.New()

	s.Run("start passes the authenticated member", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), s.member, ticketID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/business/tickets/"+ticketID.String()+"/start", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("complete from waiting is a conflict", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.member, ticketID).
			Return(errs.Mark(errs.New("waiting -> completed"), errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/business/tickets/"+ticketID.String()+"/complete", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid status transition")
	})

	s.Run("cancel in another business is forbidden", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.member, ticketID).
			Return(errs.Mark(staff.ErrWrongBusiness, errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/business/tickets/"+ticketID.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("missing member is unauthorized", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/unauthenticated/tickets/"+ticketID.String()+"/start", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func mustMember(t *testing.T, businessID uuid.UUID) staff.Member {
	t.Helper()
	m, err := staff.NewMember(uuid.New(), businessID, staff.RoleStaff)
	if err != nil {
		t.Fatalf("build member: %v", err)
	}
	return m
}

func fakeStaffAuth(member staff.Member) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetMember(c, member)
		c.Next()
	}
}
