package repository

import (
	"context"

	"github.com/campushub/circulation-service/internal/model"
)

func (r *repository) GetLibraryStats(ctx context.Context, collegeID string) (model.LibraryStats, error) {
	const q = `
select
    coalesce((select sum(copies) from book where college_id = $1), 0)          as total_books,
    coalesce((select sum(available_count) from book where college_id = $1), 0) as available_books,
    coalesce((select count(*) from borrowing
              where college_id = $1 and status in ('BORROWED', 'RETURN_REQUESTED')), 0) as borrowed_books,
    coalesce((select count(*) from borrowing
              where college_id = $1 and status in ('BORROWED', 'RETURN_REQUESTED')
                and due_date < current_date), 0) as overdue_books`
	var stats model.LibraryStats
	if err := r.db.GetContext(ctx, &stats, q, collegeID); err != nil {
		return model.LibraryStats{}, err
	}
	return stats, nil
}

// ReconcileAvailability compares every book's cached counter against the
// actual number of AVAILABLE copies. Mismatches are reported, never
// silently corrected.
func (r *repository) ReconcileAvailability(ctx context.Context) ([]model.AvailabilityMismatch, error) {
	const q = `
select b.book_uid, b.available_count,
       coalesce(count(c.id) filter (where c.status = 'AVAILABLE'), 0) as actual_free
from book b
left join book_copy c on c.book_id = b.id
group by b.id, b.book_uid, b.available_count
having b.available_count <> coalesce(count(c.id) filter (where c.status = 'AVAILABLE'), 0)`
	var items []model.AvailabilityMismatch
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}
