package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/campushub/circulation-service/internal/model"
)

type Repository interface {
	// catalog
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUID string) (model.Book, error)
	FindBookByCode(ctx context.Context, collegeID, code string) (model.Book, error)

	// copy ledger
	AddCopies(ctx context.Context, bookUID string, count int) ([]model.BookCopy, error)
	MarkCopyLost(ctx context.Context, copyUID string) (model.BookCopy, error)
	MarkCopyMaintenance(ctx context.Context, copyUID string) (model.BookCopy, error)

	// circulation
	LendBook(ctx context.Context, book model.Book, studentID string, dueDate time.Time) (model.Borrowing, error)
	GetBorrowing(ctx context.Context, borrowingUID string) (model.Borrowing, error)
	ListBorrowings(ctx context.Context, collegeID, studentID string) ([]model.Borrowing, error)
	RequestReturn(ctx context.Context, borrowingUID string) (model.Borrowing, error)
	ApproveReturn(ctx context.Context, borrowingUID, approverID string, fine int) (model.Borrowing, error)

	// statistics and audit
	GetLibraryStats(ctx context.Context, collegeID string) (model.LibraryStats, error)
	ReconcileAvailability(ctx context.Context) ([]model.AvailabilityMismatch, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookTableName      = `book`
	bookCopyTableName  = `book_copy`
	borrowingTableName = `borrowing`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// inTx runs fn inside a transaction, rolling back on error.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
