package prompt

import (
	"fmt"
	"strings"

	"library-ai-gateway/internal/model"
)

// statusText localizes borrow-record statuses. Unknown statuses pass
// through untranslated.
func statusText(status string) string {
	switch status {
	case model.StatusBorrowed:
		return "借閱中"
	case model.StatusReturned:
		return "已歸還"
	case model.StatusOverdue:
		return "逾期"
	}
	return status
}

// FormatStats renders the collection summary section.
func FormatStats(stats model.LibraryStats) string {
	return fmt.Sprintf(
		"圖書館統計資訊：\n- 總藏書: %d 本\n- 可借閱: %d 本\n- 已借出: %d 本",
		stats.TotalBooks, stats.AvailableBooks, stats.BorrowedBooks)
}

// FormatBorrowHistory renders past borrow records, one numbered line each.
func FormatBorrowHistory(history []model.BorrowRecord) string {
	if len(history) == 0 {
		return noHistorySentinel
	}

	lines := []string{fmt.Sprintf("借閱歷史記錄（共 %d 筆）：", len(history))}
	for i, rec := range history {
		returned := rec.ReturnDate
		if returned == "" {
			returned = "未歸還"
		}
		lines = append(lines, fmt.Sprintf(
			"%d. 《%s》(ID: %s) - 借出: %s, 歸還: %s, 狀態: %s",
			i+1, rec.BookTitle, rec.BookID, rec.BorrowDate, returned, statusText(rec.Status)))
	}
	return strings.Join(lines, "\n")
}

// FormatCurrentBorrowings renders books currently out, with due dates.
func FormatCurrentBorrowings(borrowings []model.BorrowRecord) string {
	if len(borrowings) == 0 {
		return noBorrowingsSentinel
	}

	lines := []string{fmt.Sprintf("目前借閱中（共 %d 筆）：", len(borrowings))}
	for i, rec := range borrowings {
		lines = append(lines, fmt.Sprintf(
			"%d. 《%s》(ID: %s) - 借出: %s, 到期: %s, 狀態: %s",
			i+1, rec.BookTitle, rec.BookID, rec.BorrowDate, rec.DueDate, statusText(rec.Status)))
	}
	return strings.Join(lines, "\n")
}

// FormatTargetBook renders the book the question is about.
func FormatTargetBook(book model.TargetBook) string {
	availability := "已借出"
	if book.Available {
		availability = "可借閱"
	}

	lines := []string{
		"目標書籍資訊：",
		fmt.Sprintf("《%s》(ID: %s) - %s / %s", book.Title, book.ID, book.Author, book.Publisher),
	}
	if book.Description != "" {
		lines = append(lines, fmt.Sprintf("簡介: %s", Truncate(book.Description, descriptionBudget)))
	}
	lines = append(lines,
		fmt.Sprintf("狀態: %s", availability),
		fmt.Sprintf("借閱次數: %d, 平均評分: %.1f（共 %d 則評論）",
			book.BorrowCount, book.AverageRating, book.ReviewCount))
	return strings.Join(lines, "\n")
}

// FormatAvailableBooks renders at most limit candidate books, noting how
// many were left out.
func FormatAvailableBooks(books []model.Book, limit int) string {
	if len(books) == 0 {
		return noBooksSentinel
	}

	shown := books
	if len(shown) > limit {
		shown = shown[:limit]
	}

	lines := []string{fmt.Sprintf("可借閱書籍（共 %d 本，顯示前 %d 本）：", len(books), len(shown))}
	for i, b := range shown {
		line := fmt.Sprintf("%d. 《%s》(ID: %s) - %s / %s", i+1, b.Title, b.ID, b.Author, b.Publisher)
		if b.Description != "" {
			line += fmt.Sprintf("\n   簡介: %s", Truncate(b.Description, descriptionBudget))
		}
		lines = append(lines, line)
	}
	if len(books) > limit {
		lines = append(lines, fmt.Sprintf("... 還有 %d 本書籍未顯示", len(books)-limit))
	}
	return strings.Join(lines, "\n")
}

// FormatLibraryRules renders rules grouped by category. Categories appear
// in first-seen order and items keep their input order within a category.
func FormatLibraryRules(rules []model.LibraryRule) string {
	if len(rules) == 0 {
		return noRulesSentinel
	}

	var categories []string
	byCategory := make(map[string][]model.LibraryRule)
	for _, rule := range rules {
		category := rule.Category
		if category == "" {
			category = "其他"
		}
		if _, seen := byCategory[category]; !seen {
			categories = append(categories, category)
		}
		byCategory[category] = append(byCategory[category], rule)
	}

	lines := []string{fmt.Sprintf("圖書館規則（共 %d 條）：", len(rules))}
	for _, category := range categories {
		lines = append(lines, fmt.Sprintf("\n【%s】", category))
		for i, rule := range byCategory[category] {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, rule.Question))
			lines = append(lines, fmt.Sprintf("   %s", rule.Answer))
		}
	}
	return strings.Join(lines, "\n")
}
