package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/model"
)

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	condition := req.Condition
	if condition == "" {
		condition = model.ConditionGood
	}
	var book model.Book
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(bookTableName).
			Columns("book_uid", "college_id", "title", "author", "isbn", "unique_code",
				"genre", "condition", "copies", "available_count", "created_by", "created_at").
			Values(uuid.New(), req.CollegeID, req.Title, req.Author, req.ISBN, req.UniqueCode,
				req.Genre, condition, req.Copies, req.Copies, req.CreatedBy, time.Now().UTC()).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &book, q, args...); err != nil {
			return err
		}
		_, err = provisionCopies(ctx, tx, book.ID, book.CollegeID, req.Copies)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Book{}, errs.ErrCodeConflict
		}
		r.log.Error("CreateBook", zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, bookUID string) (model.Book, error) {
	q, args, err := qb.Select("*").
		From(bookTableName).
		Where(sq.Eq{"book_uid": bookUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// FindBookByCode resolves a scannable unique code within one college. The
// same code may exist in another college for a different book.
func (r *repository) FindBookByCode(ctx context.Context, collegeID, code string) (model.Book, error) {
	q, args, err := qb.Select("*").
		From(bookTableName).
		Where(sq.Eq{"college_id": collegeID}).
		Where(sq.Eq{"unique_code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// adjustAvailability applies a relative change to the cached counter. The
// predicate keeps the result inside [0, copies]; a zero-row update on an
// existing book means the counter would leave its valid range.
func adjustAvailability(ctx context.Context, tx *sqlx.Tx, bookID, delta int) error {
	q := `
update book
    set available_count = available_count + $2
where id = $1 and available_count + $2 between 0 and copies`
	res, err := tx.ExecContext(ctx, q, bookID, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`select exists(select 1 from book where id = $1)`, bookID); err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}
		return errs.ErrInvariant
	}
	return nil
}
