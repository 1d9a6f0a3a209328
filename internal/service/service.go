package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/model"
	"github.com/campushub/circulation-service/internal/repository"
	"github.com/campushub/circulation-service/pkg/kafka"
)

// IdentityClient resolves a user id to role and college via the
// identity-provider collaborator.
type IdentityClient interface {
	ResolveUser(ctx context.Context, userID string) (model.User, error)
}

type Service struct {
	log        *zap.Logger
	repo       repository.Repository
	identity   IdentityClient
	publisher  kafka.Publisher
	finePerDay int
}

func NewService(repo repository.Repository, identity IdentityClient, publisher kafka.Publisher, finePerDay int, log *zap.Logger) *Service {
	return &Service{
		log:        log,
		repo:       repo,
		identity:   identity,
		publisher:  publisher,
		finePerDay: finePerDay,
	}
}

func (s *Service) CreateBook(ctx context.Context, actorID string, req model.CreateBookRequest) (model.Book, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return model.Book{}, err
	}
	if !actor.CanLend() {
		return model.Book{}, errs.ErrForbidden
	}
	req.CollegeID = actor.CollegeID
	req.CreatedBy = actor.ID
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) GetBook(ctx context.Context, bookUID string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUID)
}

func (s *Service) FindBookByCode(ctx context.Context, actorID, code string) (model.Book, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.FindBookByCode(ctx, actor.CollegeID, code)
}

func (s *Service) AddCopies(ctx context.Context, actorID, bookUID string, count int) ([]model.BookCopy, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanLend() {
		return nil, errs.ErrForbidden
	}
	book, err := s.repo.GetBook(ctx, bookUID)
	if err != nil {
		return nil, err
	}
	if book.CollegeID != actor.CollegeID {
		return nil, errs.ErrForbidden
	}
	return s.repo.AddCopies(ctx, bookUID, count)
}

func (s *Service) MarkCopyLost(ctx context.Context, actorID, copyUID string) (model.BookCopy, error) {
	if err := s.requireLibrarian(ctx, actorID); err != nil {
		return model.BookCopy{}, err
	}
	return s.repo.MarkCopyLost(ctx, copyUID)
}

func (s *Service) MarkCopyMaintenance(ctx context.Context, actorID, copyUID string) (model.BookCopy, error) {
	if err := s.requireLibrarian(ctx, actorID); err != nil {
		return model.BookCopy{}, err
	}
	return s.repo.MarkCopyMaintenance(ctx, copyUID)
}

// LendBook checks the actor may lend and the borrower is a student, resolves
// the book by uid or scannable code, and hands the claim to the repository.
func (s *Service) LendBook(ctx context.Context, actorID string, req model.LendRequest) (model.Borrowing, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return model.Borrowing{}, err
	}
	if !actor.CanLend() {
		return model.Borrowing{}, errs.ErrForbidden
	}
	student, err := s.identity.ResolveUser(ctx, req.StudentID)
	if err != nil {
		return model.Borrowing{}, err
	}
	if student.Role != model.RoleStudent {
		return model.Borrowing{}, errs.ErrStudentRole
	}
	if !req.DueDate.Time.After(time.Now()) {
		return model.Borrowing{}, errs.ErrDueDate
	}

	var book model.Book
	if req.UniqueCode != "" {
		book, err = s.repo.FindBookByCode(ctx, actor.CollegeID, req.UniqueCode)
	} else {
		book, err = s.repo.GetBook(ctx, req.BookUID)
	}
	if err != nil {
		return model.Borrowing{}, err
	}
	if book.CollegeID != actor.CollegeID {
		return model.Borrowing{}, errs.ErrForbidden
	}

	brw, err := s.repo.LendBook(ctx, book, req.StudentID, req.DueDate.Time)
	if err != nil {
		return model.Borrowing{}, err
	}
	s.publish(kafka.Event{
		Timestamp:    time.Now().UTC(),
		EventType:    kafka.EventBookLent,
		CollegeID:    brw.CollegeID,
		BookUID:      brw.BookUID,
		BorrowingUID: brw.BorrowingUID,
		StudentID:    brw.StudentID,
	})
	return brw, nil
}

// RequestReturn may be called by the borrowing student themselves or by
// faculty/librarian/HOD acting on their behalf.
func (s *Service) RequestReturn(ctx context.Context, actorID, borrowingUID string) (model.Borrowing, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return model.Borrowing{}, err
	}
	brw, err := s.repo.GetBorrowing(ctx, borrowingUID)
	if err != nil {
		return model.Borrowing{}, err
	}
	if actor.Role == model.RoleStudent && actor.ID != brw.StudentID {
		return model.Borrowing{}, errs.ErrForbidden
	}
	brw, err = s.repo.RequestReturn(ctx, borrowingUID)
	if err != nil {
		return model.Borrowing{}, err
	}
	s.publish(kafka.Event{
		Timestamp:    time.Now().UTC(),
		EventType:    kafka.EventReturnRequested,
		CollegeID:    brw.CollegeID,
		BookUID:      brw.BookUID,
		BorrowingUID: brw.BorrowingUID,
		StudentID:    brw.StudentID,
	})
	return brw, nil
}

// ApproveReturn is the librarian/HOD closing step: it fixes the fine from
// whole days overdue and puts the copy back in circulation.
func (s *Service) ApproveReturn(ctx context.Context, actorID, borrowingUID string) (model.Borrowing, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return model.Borrowing{}, err
	}
	if !actor.CanApproveReturn() {
		return model.Borrowing{}, errs.ErrForbidden
	}
	brw, err := s.repo.GetBorrowing(ctx, borrowingUID)
	if err != nil {
		return model.Borrowing{}, err
	}
	if brw.Status == model.StatusReturned {
		return model.Borrowing{}, errs.ErrInvalidState
	}
	fine := CalcFine(brw.DueDate, time.Now(), s.finePerDay)
	brw, err = s.repo.ApproveReturn(ctx, borrowingUID, actor.ID, fine)
	if err != nil {
		return model.Borrowing{}, err
	}
	s.publish(kafka.Event{
		Timestamp:    time.Now().UTC(),
		EventType:    kafka.EventBookReturned,
		CollegeID:    brw.CollegeID,
		BookUID:      brw.BookUID,
		BorrowingUID: brw.BorrowingUID,
		StudentID:    brw.StudentID,
		Fine:         fine,
	})
	return brw, nil
}

func (s *Service) ListBorrowings(ctx context.Context, actorID, studentID string) ([]model.Borrowing, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	// students only ever see their own borrowings
	if actor.Role == model.RoleStudent {
		studentID = actor.ID
	}
	return s.repo.ListBorrowings(ctx, actor.CollegeID, studentID)
}

func (s *Service) GetLibraryStats(ctx context.Context, actorID string) (model.LibraryStats, error) {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return model.LibraryStats{}, err
	}
	return s.repo.GetLibraryStats(ctx, actor.CollegeID)
}

// Reconcile is the pull-based audit over the cached availability counters.
// Mismatches are logged as invariant violations and returned to the caller;
// nothing is auto-corrected.
func (s *Service) Reconcile(ctx context.Context) ([]model.AvailabilityMismatch, error) {
	items, err := s.repo.ReconcileAvailability(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range items {
		s.log.Error("availability mismatch",
			zap.String("bookUid", m.BookUID),
			zap.Int("availableCount", m.AvailableCount),
			zap.Int("actualFree", m.ActualFree),
			zap.Error(errs.ErrInvariant),
		)
	}
	return items, nil
}

func (s *Service) requireLibrarian(ctx context.Context, actorID string) error {
	actor, err := s.identity.ResolveUser(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.CanApproveReturn() {
		return errs.ErrForbidden
	}
	return nil
}

func (s *Service) publish(event kafka.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(kafka.CirculationTopic, event); err != nil {
		s.log.Warn("publish event", zap.String("type", string(event.EventType)), zap.Error(err))
	}
}
