package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/model"
)

const borrowingColumns = `b.id, b.borrowing_uid, b.book_id, bk.book_uid, b.copy_id, b.college_id,
	b.student_id, b.issue_date, b.due_date, b.return_requested_at, b.return_date,
	b.approved_by, b.status, b.fine`

// LendBook runs the whole lend as one transaction: claim a free copy,
// decrement the cached availability, create the borrowing record. Postgres
// gives multi-record atomicity, so no cross-store compensation is needed;
// any failed step rolls back the claim.
func (r *repository) LendBook(ctx context.Context, book model.Book, studentID string, dueDate time.Time) (model.Borrowing, error) {
	var brw model.Borrowing
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		cp, err := allocateFreeCopy(ctx, tx, book.ID)
		if err != nil {
			return err
		}
		if err := adjustAvailability(ctx, tx, book.ID, -1); err != nil {
			return err
		}
		q, args, err := qb.Insert(borrowingTableName).
			Columns("borrowing_uid", "book_id", "copy_id", "college_id", "student_id",
				"issue_date", "due_date", "status").
			Values(uuid.New(), book.ID, cp.ID, book.CollegeID, studentID,
				time.Now().UTC(), dueDate.Format(time.DateOnly), model.StatusBorrowed).
			Suffix("returning borrowing_uid").
			ToSql()
		if err != nil {
			return err
		}
		var brwUID string
		if err := tx.GetContext(ctx, &brwUID, q, args...); err != nil {
			return err
		}
		brw, err = getBorrowingTx(ctx, tx, brwUID)
		return err
	})
	if err != nil {
		if !errors.Is(err, errs.ErrNoAvailableCopy) {
			r.log.Error("LendBook", zap.String("bookUid", book.BookUID), zap.Error(err))
		}
		return model.Borrowing{}, err
	}
	return brw, nil
}

func getBorrowingTx(ctx context.Context, q sqlx.QueryerContext, borrowingUID string) (model.Borrowing, error) {
	var brw model.Borrowing
	err := sqlx.GetContext(ctx, q, &brw, `
select `+borrowingColumns+`
from borrowing b
join book bk on bk.id = b.book_id
where b.borrowing_uid = $1`, borrowingUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrowing{}, errs.ErrNotFound
		}
		return model.Borrowing{}, err
	}
	return brw, nil
}

func (r *repository) GetBorrowing(ctx context.Context, borrowingUID string) (model.Borrowing, error) {
	return getBorrowingTx(ctx, r.db, borrowingUID)
}

func (r *repository) ListBorrowings(ctx context.Context, collegeID, studentID string) ([]model.Borrowing, error) {
	q := qb.Select("b.id", "b.borrowing_uid", "b.book_id", "bk.book_uid", "b.copy_id", "b.college_id",
		"b.student_id", "b.issue_date", "b.due_date", "b.return_requested_at", "b.return_date",
		"b.approved_by", "b.status", "b.fine").
		From(borrowingTableName + " b").
		Join(bookTableName + " bk on bk.id = b.book_id").
		Where(sq.Eq{"b.college_id": collegeID}).
		OrderBy("b.issue_date desc")
	if studentID != "" {
		q = q.Where(sq.Eq{"b.student_id": studentID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Borrowing
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// RequestReturn moves BORROWED to RETURN_REQUESTED. Repeating the request
// while already RETURN_REQUESTED is a no-op returning the current record;
// a RETURNED borrowing rejects the transition.
func (r *repository) RequestReturn(ctx context.Context, borrowingUID string) (model.Borrowing, error) {
	res, err := r.db.ExecContext(ctx, `
update borrowing set status = 'RETURN_REQUESTED', return_requested_at = now()
where borrowing_uid = $1 and status = 'BORROWED'`, borrowingUID)
	if err != nil {
		return model.Borrowing{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Borrowing{}, err
	}
	brw, err := getBorrowingTx(ctx, r.db, borrowingUID)
	if err != nil {
		return model.Borrowing{}, err
	}
	if n == 0 {
		if brw.Status == model.StatusReturned {
			return model.Borrowing{}, errs.ErrInvalidState
		}
		// already RETURN_REQUESTED: idempotent repeat
	}
	return brw, nil
}

// ApproveReturn closes the borrowing, releases the copy and restores the
// availability counter in one transaction. The conditional update makes a
// racing second approval lose with zero rows.
func (r *repository) ApproveReturn(ctx context.Context, borrowingUID, approverID string, fine int) (model.Borrowing, error) {
	var brw model.Borrowing
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var ids struct {
			CopyID int `db:"copy_id"`
			BookID int `db:"book_id"`
		}
		err := tx.GetContext(ctx, &ids, `
update borrowing
    set status = 'RETURNED', return_date = now(), approved_by = $2, fine = $3
where borrowing_uid = $1 and status in ('BORROWED', 'RETURN_REQUESTED')
returning copy_id, book_id`, borrowingUID, approverID, fine)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				var exists bool
				if err := tx.GetContext(ctx, &exists,
					`select exists(select 1 from borrowing where borrowing_uid = $1)`, borrowingUID); err != nil {
					return err
				}
				if !exists {
					return errs.ErrNotFound
				}
				return errs.ErrInvalidState
			}
			return err
		}
		if err := releaseCopy(ctx, tx, ids.CopyID); err != nil {
			return err
		}
		if err := adjustAvailability(ctx, tx, ids.BookID, +1); err != nil {
			return err
		}
		brw, err = getBorrowingTx(ctx, tx, borrowingUID)
		return err
	})
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, errs.ErrInvalidState) {
			r.log.Error("ApproveReturn", zap.String("borrowingUid", borrowingUID), zap.Error(err))
		}
		return model.Borrowing{}, err
	}
	return brw, nil
}
