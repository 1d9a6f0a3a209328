package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/model"
	"github.com/campushub/circulation-service/internal/service"
	"github.com/campushub/circulation-service/internal/service/mocks"
)

const (
	collegeID  = "5a9c2f2e-62b2-4f91-9c36-0a2b06a9f1aa"
	librarian  = "lib-1"
	studentA   = "stu-a"
	studentB   = "stu-b"
	bookUID    = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	borrowUID  = "8c9e6c1d-0b52-4f3b-8a88-d0f0a7e2c5de"
	finePerDay = 5
)

func newService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockIdentityClient) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := mocks.NewMockRepository(c)
	idn := mocks.NewMockIdentityClient(c)
	svc := service.NewService(repo, idn, nil, finePerDay, zap.NewExample().Named("test"))
	return svc, repo, idn
}

func librarianUser() model.User {
	return model.User{ID: librarian, Role: model.RoleLibrarian, CollegeID: collegeID}
}

func studentUser(id string) model.User {
	return model.User{ID: id, Role: model.RoleStudent, CollegeID: collegeID}
}

func catalogBook() model.Book {
	return model.Book{ID: 1, BookUID: bookUID, CollegeID: collegeID, Title: "Operating Systems", Copies: 2, AvailableCount: 1}
}

func TestService_LendBook(t *testing.T) {
	ctx := context.Background()
	due := model.Date{Time: time.Now().Add(14 * 24 * time.Hour)}
	pastDue := model.Date{Time: time.Now().Add(-24 * time.Hour)}

	t.Run("ok by book uid", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)
		repo.EXPECT().GetBook(ctx, bookUID).Return(catalogBook(), nil)
		repo.EXPECT().LendBook(ctx, catalogBook(), studentA, due.Time).
			Return(model.Borrowing{BorrowingUID: borrowUID, BookUID: bookUID, CollegeID: collegeID, StudentID: studentA, Status: model.StatusBorrowed}, nil)

		brw, err := svc.LendBook(ctx, librarian, model.LendRequest{BookUID: bookUID, StudentID: studentA, DueDate: due})
		require.NoError(t, err)
		require.Equal(t, model.StatusBorrowed, brw.Status)
	})

	t.Run("ok by unique code", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)
		repo.EXPECT().FindBookByCode(ctx, collegeID, "PHY101").Return(catalogBook(), nil)
		repo.EXPECT().LendBook(ctx, catalogBook(), studentA, due.Time).
			Return(model.Borrowing{BorrowingUID: borrowUID, Status: model.StatusBorrowed}, nil)

		_, err := svc.LendBook(ctx, librarian, model.LendRequest{UniqueCode: "PHY101", StudentID: studentA, DueDate: due})
		require.NoError(t, err)
	})

	t.Run("students cannot lend", func(t *testing.T) {
		svc, _, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)

		_, err := svc.LendBook(ctx, studentA, model.LendRequest{BookUID: bookUID, StudentID: studentB, DueDate: due})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("borrower must be a student", func(t *testing.T) {
		svc, _, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		idn.EXPECT().ResolveUser(ctx, "prof-1").Return(model.User{ID: "prof-1", Role: model.RoleFaculty, CollegeID: collegeID}, nil)

		_, err := svc.LendBook(ctx, librarian, model.LendRequest{BookUID: bookUID, StudentID: "prof-1", DueDate: due})
		require.ErrorIs(t, err, errs.ErrStudentRole)
	})

	t.Run("due date in the past", func(t *testing.T) {
		svc, _, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)

		_, err := svc.LendBook(ctx, librarian, model.LendRequest{BookUID: bookUID, StudentID: studentA, DueDate: pastDue})
		require.ErrorIs(t, err, errs.ErrDueDate)
	})

	t.Run("book from another college", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)
		other := catalogBook()
		other.CollegeID = "another-college"
		repo.EXPECT().GetBook(ctx, bookUID).Return(other, nil)

		_, err := svc.LendBook(ctx, librarian, model.LendRequest{BookUID: bookUID, StudentID: studentA, DueDate: due})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("inventory exhausted", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)
		repo.EXPECT().GetBook(ctx, bookUID).Return(catalogBook(), nil)
		repo.EXPECT().LendBook(ctx, catalogBook(), studentA, due.Time).
			Return(model.Borrowing{}, errs.ErrNoAvailableCopy)

		_, err := svc.LendBook(ctx, librarian, model.LendRequest{BookUID: bookUID, StudentID: studentA, DueDate: due})
		require.ErrorIs(t, err, errs.ErrNoAvailableCopy)
	})
}

func TestService_RequestReturn(t *testing.T) {
	ctx := context.Background()
	active := model.Borrowing{BorrowingUID: borrowUID, BookUID: bookUID, CollegeID: collegeID, StudentID: studentA, Status: model.StatusBorrowed}

	t.Run("borrowing student may request", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)
		repo.EXPECT().GetBorrowing(ctx, borrowUID).Return(active, nil)
		requested := active
		requested.Status = model.StatusReturnRequested
		repo.EXPECT().RequestReturn(ctx, borrowUID).Return(requested, nil)

		brw, err := svc.RequestReturn(ctx, studentA, borrowUID)
		require.NoError(t, err)
		require.Equal(t, model.StatusReturnRequested, brw.Status)
	})

	t.Run("another student may not", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, studentB).Return(studentUser(studentB), nil)
		repo.EXPECT().GetBorrowing(ctx, borrowUID).Return(active, nil)

		_, err := svc.RequestReturn(ctx, studentB, borrowUID)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("librarian on behalf of the student", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		repo.EXPECT().GetBorrowing(ctx, borrowUID).Return(active, nil)
		repo.EXPECT().RequestReturn(ctx, borrowUID).Return(active, nil)

		_, err := svc.RequestReturn(ctx, librarian, borrowUID)
		require.NoError(t, err)
	})

	t.Run("already returned", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)
		repo.EXPECT().GetBorrowing(ctx, borrowUID).Return(active, nil)
		repo.EXPECT().RequestReturn(ctx, borrowUID).Return(model.Borrowing{}, errs.ErrInvalidState)

		_, err := svc.RequestReturn(ctx, studentA, borrowUID)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestService_ApproveReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("overdue return carries a fine", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		brw := model.Borrowing{
			BorrowingUID: borrowUID, BookUID: bookUID, CollegeID: collegeID,
			StudentID: studentA, Status: model.StatusReturnRequested,
			DueDate: time.Now().Add(-3 * 24 * time.Hour),
		}
		repo.EXPECT().GetBorrowing(ctx, borrowUID).Return(brw, nil)
		fine := 3 * finePerDay
		returned := brw
		returned.Status = model.StatusReturned
		returned.Fine = &fine
		repo.EXPECT().ApproveReturn(ctx, borrowUID, librarian, fine).Return(returned, nil)

		got, err := svc.ApproveReturn(ctx, librarian, borrowUID)
		require.NoError(t, err)
		require.Equal(t, model.StatusReturned, got.Status)
		require.NotNil(t, got.Fine)
		require.Equal(t, fine, *got.Fine)
	})

	t.Run("on-time return costs nothing", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		brw := model.Borrowing{
			BorrowingUID: borrowUID, Status: model.StatusBorrowed,
			DueDate: time.Now().Add(24 * time.Hour),
		}
		repo.EXPECT().GetBorrowing(ctx, borrowUID).Return(brw, nil)
		repo.EXPECT().ApproveReturn(ctx, borrowUID, librarian, 0).Return(brw, nil)

		_, err := svc.ApproveReturn(ctx, librarian, borrowUID)
		require.NoError(t, err)
	})

	t.Run("double approval rejected", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		repo.EXPECT().GetBorrowing(ctx, borrowUID).
			Return(model.Borrowing{BorrowingUID: borrowUID, Status: model.StatusReturned}, nil)

		_, err := svc.ApproveReturn(ctx, librarian, borrowUID)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("faculty may not approve", func(t *testing.T) {
		svc, _, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, "prof-1").
			Return(model.User{ID: "prof-1", Role: model.RoleFaculty, CollegeID: collegeID}, nil)

		_, err := svc.ApproveReturn(ctx, "prof-1", borrowUID)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("college and creator come from the actor", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		req := model.CreateBookRequest{Title: "Operating Systems", Author: "Tanenbaum", Copies: 2}
		stamped := req
		stamped.CollegeID = collegeID
		stamped.CreatedBy = librarian
		repo.EXPECT().CreateBook(ctx, stamped).Return(catalogBook(), nil)

		book, err := svc.CreateBook(ctx, librarian, req)
		require.NoError(t, err)
		require.Equal(t, collegeID, book.CollegeID)
	})

	t.Run("students cannot create books", func(t *testing.T) {
		svc, _, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)

		_, err := svc.CreateBook(ctx, studentA, model.CreateBookRequest{Title: "x", Author: "y", Copies: 1})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("duplicate unique code", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		repo.EXPECT().CreateBook(ctx, gomock.Any()).Return(model.Book{}, errs.ErrCodeConflict)

		_, err := svc.CreateBook(ctx, librarian, model.CreateBookRequest{Title: "x", Author: "y", Copies: 1})
		require.ErrorIs(t, err, errs.ErrCodeConflict)
	})
}

func TestService_ListBorrowings(t *testing.T) {
	ctx := context.Background()

	t.Run("students see only their own", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, studentA).Return(studentUser(studentA), nil)
		repo.EXPECT().ListBorrowings(ctx, collegeID, studentA).Return([]model.Borrowing{}, nil)

		_, err := svc.ListBorrowings(ctx, studentA, studentB)
		require.NoError(t, err)
	})

	t.Run("librarian can filter by student", func(t *testing.T) {
		svc, repo, idn := newService(t)
		idn.EXPECT().ResolveUser(ctx, librarian).Return(librarianUser(), nil)
		repo.EXPECT().ListBorrowings(ctx, collegeID, studentB).Return([]model.Borrowing{}, nil)

		_, err := svc.ListBorrowings(ctx, librarian, studentB)
		require.NoError(t, err)
	})
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService(t)
	mismatches := []model.AvailabilityMismatch{
		{BookUID: bookUID, AvailableCount: 2, ActualFree: 1},
	}
	repo.EXPECT().ReconcileAvailability(ctx).Return(mismatches, nil)

	got, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	require.Equal(t, mismatches, got)
}
