package model

// ChatContext is the structured library snapshot the backend attaches to a
// chat request. Field names mirror the backend's JSON exactly (camelCase).
type ChatContext struct {
	HasData           bool           `json:"hasData"`
	Stats             *LibraryStats  `json:"stats,omitempty"`
	BorrowHistory     []BorrowRecord `json:"borrowHistory,omitempty"`
	CurrentBorrowings []BorrowRecord `json:"currentBorrowings,omitempty"`
	TargetBook        *TargetBook    `json:"targetBook,omitempty"`
	AvailableBooks    []Book         `json:"availableBooks,omitempty"`
	LibraryRules      []LibraryRule  `json:"libraryRules,omitempty"`
}

// LibraryStats summarizes the collection.
type LibraryStats struct {
	TotalBooks     int `json:"totalBooks"`
	AvailableBooks int `json:"availableBooks"`
	BorrowedBooks  int `json:"borrowedBooks"`
}

// BorrowRecord is one borrow-history or current-borrowing entry.
// ReturnDate is empty while the book is still out; DueDate is only set on
// current borrowings.
type BorrowRecord struct {
	BookID     string `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	BorrowDate string `json:"borrowDate"`
	ReturnDate string `json:"returnDate,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	Status     string `json:"status"`
}

// Borrow record statuses.
const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
	StatusOverdue  = "overdue"
)

// TargetBook is the book a chat question is about, with availability and
// rating data attached.
type TargetBook struct {
	Book
	Available     bool    `json:"available"`
	BorrowCount   int     `json:"borrowCount"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// LibraryRule is one FAQ-style rule entry.
type LibraryRule struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
