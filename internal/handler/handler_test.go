package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/handler"
	service_mocks "github.com/campushub/circulation-service/internal/handler/mocks"
	"github.com/campushub/circulation-service/internal/model"
	"github.com/campushub/circulation-service/pkg/auth"
	md "github.com/campushub/circulation-service/pkg/middleware"
	"github.com/campushub/circulation-service/pkg/validate"
)

const (
	collegeID = "5a9c2f2e-62b2-4f91-9c36-0a2b06a9f1aa"
	bookUID   = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	borrowUID = "8c9e6c1d-0b52-4f3b-8a88-d0f0a7e2c5de"
)

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockCirculationService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockCirculationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/borrowings", h.LendBook, md.AuthContext)
	e.POST("/borrowings/:borrowingUid/return", h.ApproveReturn, md.AuthContext)
	e.POST("/borrowings/:borrowingUid/return-request", h.RequestReturn, md.AuthContext)
	e.GET("/stats", h.GetLibraryStats, md.AuthContext)
	return e, svc
}

func TestHandler_LendBook(t *testing.T) {
	t.Parallel()
	borrowing := model.Borrowing{
		BorrowingUID: borrowUID,
		BookUID:      bookUID,
		CollegeID:    collegeID,
		StudentID:    "stu-a",
		IssueDate:    time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		Status:       model.StatusBorrowed,
	}

	tests := []struct {
		name         string
		body         string
		actorID      string
		mockBehavior func(r *service_mocks.MockCirculationService)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "ok",
			body:    `{"bookUid":"` + bookUID + `","studentId":"stu-a","dueDate":"2026-09-20"}`,
			actorID: "lib-1",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					LendBook(gomock.Any(), "lib-1", model.LendRequest{
						BookUID:   bookUID,
						StudentID: "stu-a",
						DueDate:   model.Date{Time: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
					}).
					Return(borrowing, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"borrowingUid":"` + borrowUID + `","bookUid":"` + bookUID + `","collegeId":"` + collegeID + `","studentId":"stu-a","issueDate":"2026-09-06T10:00:00Z","dueDate":"2026-09-20T00:00:00Z","status":"BORROWED"}`,
		},
		{
			name:    "no available copy",
			body:    `{"bookUid":"` + bookUID + `","studentId":"stu-a","dueDate":"2026-09-20"}`,
			actorID: "lib-1",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					LendBook(gomock.Any(), "lib-1", gomock.Any()).
					Return(model.Borrowing{}, errs.ErrNoAvailableCopy)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"no available copy"}`,
		},
		{
			name:         "missing student id",
			body:         `{"bookUid":"` + bookUID + `","dueDate":"2026-09-20"}`,
			actorID:      "lib-1",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no actor header",
			body:         `{"bookUid":"` + bookUID + `","studentId":"stu-a","dueDate":"2026-09-20"}`,
			actorID:      "",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"user-id is empty"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/borrowings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.actorID != "" {
				r.Header.Set(auth.XUserIDHeader, tt.actorID)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ApproveReturn(t *testing.T) {
	t.Parallel()
	fine := 25
	approvedBy := "lib-1"
	returnDate := time.Date(2026, 9, 25, 9, 0, 0, 0, time.UTC)
	returned := model.Borrowing{
		BorrowingUID: borrowUID,
		BookUID:      bookUID,
		CollegeID:    collegeID,
		StudentID:    "stu-a",
		IssueDate:    time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		ReturnDate:   &returnDate,
		ApprovedBy:   &approvedBy,
		Status:       model.StatusReturned,
		Fine:         &fine,
	}

	tests := []struct {
		name         string
		mockBehavior func(r *service_mocks.MockCirculationService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok with fine",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ApproveReturn(gomock.Any(), "lib-1", borrowUID).
					Return(returned, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"borrowingUid":"` + borrowUID + `","bookUid":"` + bookUID + `","collegeId":"` + collegeID + `","studentId":"stu-a","issueDate":"2026-09-06T10:00:00Z","dueDate":"2026-09-20T00:00:00Z","returnDate":"2026-09-25T09:00:00Z","approvedBy":"lib-1","status":"RETURNED","fine":25}`,
		},
		{
			name: "double approval",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ApproveReturn(gomock.Any(), "lib-1", borrowUID).
					Return(model.Borrowing{}, errs.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"invalid state transition"}`,
		},
		{
			name: "unknown borrowing",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ApproveReturn(gomock.Any(), "lib-1", borrowUID).
					Return(model.Borrowing{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/borrowings/"+borrowUID+"/return", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserIDHeader, "lib-1")
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RequestReturn(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	svc.EXPECT().
		RequestReturn(gomock.Any(), "stu-a", borrowUID).
		Return(model.Borrowing{}, errs.ErrForbidden)

	r := httptest.NewRequest(http.MethodPost, "/borrowings/"+borrowUID+"/return-request", http.NoBody)
	r.Header.Set(auth.XUserIDHeader, "stu-a")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"operation not allowed for role"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_GetLibraryStats(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	svc.EXPECT().
		GetLibraryStats(gomock.Any(), "lib-1").
		Return(model.LibraryStats{TotalBooks: 120, AvailableBooks: 80, BorrowedBooks: 40, OverdueBooks: 7}, nil)

	r := httptest.NewRequest(http.MethodGet, "/stats", http.NoBody)
	r.Header.Set(auth.XUserIDHeader, "lib-1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"totalBooks":120,"availableBooks":80,"borrowedBooks":40,"overdueBooks":7}`, strings.Trim(w.Body.String(), "\n"))
}
