package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/model"
)

// provisionCopies inserts count copies numbered sequentially after the
// current maximum for the book. All start AVAILABLE.
func provisionCopies(ctx context.Context, tx *sqlx.Tx, bookID int, collegeID string, count int) ([]model.BookCopy, error) {
	var maxNum int
	if err := tx.GetContext(ctx, &maxNum,
		`select coalesce(max(copy_number), 0) from book_copy where book_id = $1`, bookID); err != nil {
		return nil, err
	}

	ins := qb.Insert(bookCopyTableName).
		Columns("copy_uid", "book_id", "college_id", "copy_number", "status", "condition", "acquired_at")
	now := time.Now().UTC()
	for i := 1; i <= count; i++ {
		ins = ins.Values(uuid.New(), bookID, collegeID, maxNum+i, model.CopyAvailable, model.ConditionGood, now)
	}
	q, args, err := ins.Suffix("returning *").ToSql()
	if err != nil {
		return nil, err
	}
	var copies []model.BookCopy
	if err := tx.SelectContext(ctx, &copies, q, args...); err != nil {
		return nil, err
	}
	return copies, nil
}

// AddCopies registers newly acquired physical units of an existing book and
// bumps both counters accordingly.
func (r *repository) AddCopies(ctx context.Context, bookUID string, count int) ([]model.BookCopy, error) {
	var copies []model.BookCopy
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var book model.Book
		if err := tx.GetContext(ctx, &book,
			`select * from book where book_uid = $1 for update`, bookUID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		var err error
		if copies, err = provisionCopies(ctx, tx, book.ID, book.CollegeID, count); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`update book set copies = copies + $2, available_count = available_count + $2 where id = $1`,
			book.ID, count)
		return err
	})
	if err != nil {
		return nil, err
	}
	return copies, nil
}

// allocateFreeCopy claims one AVAILABLE copy for lending. Selection and
// transition happen in a single statement so two lenders racing for the
// last copy cannot both win; SKIP LOCKED sends the loser to the next
// candidate instead of blocking.
func allocateFreeCopy(ctx context.Context, tx *sqlx.Tx, bookID int) (model.BookCopy, error) {
	q := `
update book_copy set status = 'BORROWED'
where id = (
    select id from book_copy
    where book_id = $1 and status = 'AVAILABLE'
    order by copy_number
    limit 1
    for update skip locked
)
returning *`
	var cp model.BookCopy
	if err := tx.GetContext(ctx, &cp, q, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookCopy{}, errs.ErrNoAvailableCopy
		}
		return model.BookCopy{}, err
	}
	return cp, nil
}

// releaseCopy puts a BORROWED copy back on the shelf. A zero-row update
// here means the ledger and the borrowing record disagree.
func releaseCopy(ctx context.Context, tx *sqlx.Tx, copyID int) error {
	res, err := tx.ExecContext(ctx,
		`update book_copy set status = 'AVAILABLE' where id = $1 and status = 'BORROWED'`, copyID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrInvariant
	}
	return nil
}

func (r *repository) MarkCopyLost(ctx context.Context, copyUID string) (model.BookCopy, error) {
	return r.retireCopy(ctx, copyUID, model.CopyLost)
}

func (r *repository) MarkCopyMaintenance(ctx context.Context, copyUID string) (model.BookCopy, error) {
	return r.retireCopy(ctx, copyUID, model.CopyMaintenance)
}

// retireCopy moves a copy to an administrative status. Allowed from any
// state except BORROWED; taking an AVAILABLE copy off the shelf also
// decrements the book's cached counter.
func (r *repository) retireCopy(ctx context.Context, copyUID string, status model.CopyStatus) (model.BookCopy, error) {
	var cp model.BookCopy
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q := `
update book_copy c set status = $2
from (
    select id, status as old_status from book_copy
    where copy_uid = $1 and status <> 'BORROWED'
    for update
) o
where c.id = o.id
returning c.id, c.copy_uid, c.book_id, c.college_id, c.copy_number, c.status, c.condition, c.acquired_at, o.old_status`
		var row struct {
			model.BookCopy
			OldStatus model.CopyStatus `db:"old_status"`
		}
		if err := tx.GetContext(ctx, &row, q, copyUID, status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				var exists bool
				if err := tx.GetContext(ctx, &exists,
					`select exists(select 1 from book_copy where copy_uid = $1)`, copyUID); err != nil {
					return err
				}
				if !exists {
					return errs.ErrNotFound
				}
				return errs.ErrInvalidState
			}
			return err
		}
		cp = row.BookCopy
		if row.OldStatus == model.CopyAvailable {
			return adjustAvailability(ctx, tx, cp.BookID, -1)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, errs.ErrInvalidState) {
			r.log.Error("retireCopy", zap.String("copyUid", copyUID), zap.Error(err))
		}
		return model.BookCopy{}, err
	}
	return cp, nil
}
