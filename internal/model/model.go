package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleFaculty   Role = "FACULTY"
	RoleLibrarian Role = "LIBRARIAN"
	RoleHOD       Role = "HOD"
	RoleAdmin     Role = "ADMIN"
)

// User is the projection of the identity-provider record the engine needs
// for authorization: who the actor is, what they may do, which college
// inventory they act on.
type User struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	CollegeID string `json:"collegeId"`
}

func (u User) CanLend() bool {
	return u.Role == RoleLibrarian || u.Role == RoleHOD || u.Role == RoleAdmin
}

func (u User) CanApproveReturn() bool {
	return u.Role == RoleLibrarian || u.Role == RoleHOD
}

type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionBad       Condition = "BAD"
)

type Book struct {
	ID             int       `json:"-" db:"id"`
	BookUID        string    `json:"bookUid" db:"book_uid"`
	CollegeID      string    `json:"collegeId" db:"college_id"`
	Title          string    `json:"title" db:"title"`
	Author         string    `json:"author" db:"author"`
	ISBN           *string   `json:"isbn,omitempty" db:"isbn"`
	UniqueCode     *string   `json:"uniqueCode,omitempty" db:"unique_code"`
	Genre          string    `json:"genre" db:"genre"`
	Condition      Condition `json:"condition" db:"condition"`
	Copies         int       `json:"copies" db:"copies"`
	AvailableCount int       `json:"availableCount" db:"available_count"`
	CreatedBy      string    `json:"createdBy" db:"created_by"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type CopyStatus string

const (
	CopyAvailable   CopyStatus = "AVAILABLE"
	CopyBorrowed    CopyStatus = "BORROWED"
	CopyMaintenance CopyStatus = "MAINTENANCE"
	CopyLost        CopyStatus = "LOST"
)

type BookCopy struct {
	ID         int        `json:"-" db:"id"`
	CopyUID    string     `json:"copyUid" db:"copy_uid"`
	BookID     int        `json:"-" db:"book_id"`
	CollegeID  string     `json:"collegeId" db:"college_id"`
	CopyNumber int        `json:"copyNumber" db:"copy_number"`
	Status     CopyStatus `json:"status" db:"status"`
	Condition  Condition  `json:"condition" db:"condition"`
	AcquiredAt time.Time  `json:"acquiredAt" db:"acquired_at"`
}

type BorrowStatus string

const (
	StatusBorrowed        BorrowStatus = "BORROWED"
	StatusReturnRequested BorrowStatus = "RETURN_REQUESTED"
	StatusReturned        BorrowStatus = "RETURNED"
)

type Borrowing struct {
	ID                int          `json:"-" db:"id"`
	BorrowingUID      string       `json:"borrowingUid" db:"borrowing_uid"`
	BookID            int          `json:"-" db:"book_id"`
	BookUID           string       `json:"bookUid" db:"book_uid"`
	CopyID            int          `json:"-" db:"copy_id"`
	CollegeID         string       `json:"collegeId" db:"college_id"`
	StudentID         string       `json:"studentId" db:"student_id"`
	IssueDate         time.Time    `json:"issueDate" db:"issue_date"`
	DueDate           time.Time    `json:"dueDate" db:"due_date"`
	ReturnRequestedAt *time.Time   `json:"returnRequestedAt,omitempty" db:"return_requested_at"`
	ReturnDate        *time.Time   `json:"returnDate,omitempty" db:"return_date"`
	ApprovedBy        *string      `json:"approvedBy,omitempty" db:"approved_by"`
	Status            BorrowStatus `json:"status" db:"status"`
	Fine              *int         `json:"fine,omitempty" db:"fine"`
}

type CreateBookRequest struct {
	Title      string    `json:"title" validate:"required"`
	Author     string    `json:"author" validate:"required"`
	ISBN       *string   `json:"isbn,omitempty"`
	UniqueCode *string   `json:"uniqueCode,omitempty"`
	Genre      string    `json:"genre"`
	Condition  Condition `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD BAD"`
	Copies     int       `json:"copies" validate:"required,min=1"`

	CollegeID string `json:"-"`
	CreatedBy string `json:"-"`
}

type LendRequest struct {
	BookUID    string `json:"bookUid,omitempty" validate:"required_without=UniqueCode"`
	UniqueCode string `json:"uniqueCode,omitempty" validate:"required_without=BookUID"`
	StudentID  string `json:"studentId" validate:"required"`
	DueDate    Date   `json:"dueDate" validate:"required"`
}

// Date accepts both date-only and RFC3339 payloads.
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}

type LibraryStats struct {
	TotalBooks     int `json:"totalBooks" db:"total_books"`
	AvailableBooks int `json:"availableBooks" db:"available_books"`
	BorrowedBooks  int `json:"borrowedBooks" db:"borrowed_books"`
	OverdueBooks   int `json:"overdueBooks" db:"overdue_books"`
}

// AvailabilityMismatch is one row of the reconcile audit: a book whose
// cached counter disagrees with the count of AVAILABLE copies.
type AvailabilityMismatch struct {
	BookUID        string `json:"bookUid" db:"book_uid"`
	AvailableCount int    `json:"availableCount" db:"available_count"`
	ActualFree     int    `json:"actualFree" db:"actual_free"`
}
