package handler

import (
	"context"

	"github.com/campushub/circulation-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	CreateBook(ctx context.Context, actorID string, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUID string) (model.Book, error)
	FindBookByCode(ctx context.Context, actorID, code string) (model.Book, error)
	AddCopies(ctx context.Context, actorID, bookUID string, count int) ([]model.BookCopy, error)
	MarkCopyLost(ctx context.Context, actorID, copyUID string) (model.BookCopy, error)
	MarkCopyMaintenance(ctx context.Context, actorID, copyUID string) (model.BookCopy, error)
	LendBook(ctx context.Context, actorID string, req model.LendRequest) (model.Borrowing, error)
	RequestReturn(ctx context.Context, actorID, borrowingUID string) (model.Borrowing, error)
	ApproveReturn(ctx context.Context, actorID, borrowingUID string) (model.Borrowing, error)
	ListBorrowings(ctx context.Context, actorID, studentID string) ([]model.Borrowing, error)
	GetLibraryStats(ctx context.Context, actorID string) (model.LibraryStats, error)
	Reconcile(ctx context.Context) ([]model.AvailabilityMismatch, error)
}
