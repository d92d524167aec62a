package prompt

import (
	"fmt"
	"strings"

	"library-ai-gateway/internal/model"
)

const (
	// DefaultBookLimit caps how many candidate books a prompt section lists.
	DefaultBookLimit = 20
	// descriptionBudget caps free-text description length inside prompts.
	descriptionBudget = 50
)

// Builder renders prompts. It is stateless apart from configuration and
// safe for concurrent use.
type Builder struct {
	bookLimit int
}

// NewBuilder creates a Builder with the default book-list limit.
func NewBuilder() *Builder {
	return &Builder{bookLimit: DefaultBookLimit}
}

// Personal renders the prompt for history-based recommendations.
func (b *Builder) Personal(historyTitles []string, books []model.Book) string {
	history := "No history"
	if len(historyTitles) > 0 {
		history = strings.Join(historyTitles, ", ")
	}
	return fmt.Sprintf(personalTemplate, history, bookLines(books))
}

// Related renders the prompt for related-book recommendations.
func (b *Builder) Related(current model.Book, books []model.Book) string {
	return fmt.Sprintf(relatedTemplate, current.Title, current.Author, bookLines(books))
}

// BuildSystemPrompt assembles the chat system prompt. A nil context, or one
// that carries no data, yields the base instruction plus the no-data notice.
// Otherwise sections are appended in a fixed order: stats, borrow history,
// current borrowings, target book, available books, rules.
func (b *Builder) BuildSystemPrompt(ctx *model.ChatContext) string {
	if ctx == nil || !ctx.HasData {
		return BaseSystemPrompt + NoDataNotice
	}

	delim := strings.Repeat("=", 60)
	sections := []string{BaseSystemPrompt, "\n" + delim, dataHeader, delim + "\n"}

	if ctx.Stats != nil {
		sections = append(sections, FormatStats(*ctx.Stats), "")
	}
	if len(ctx.BorrowHistory) > 0 {
		sections = append(sections, FormatBorrowHistory(ctx.BorrowHistory), "")
	}
	if len(ctx.CurrentBorrowings) > 0 {
		sections = append(sections, FormatCurrentBorrowings(ctx.CurrentBorrowings), "")
	}
	if ctx.TargetBook != nil {
		sections = append(sections, FormatTargetBook(*ctx.TargetBook), "")
	}
	if len(ctx.AvailableBooks) > 0 {
		sections = append(sections, FormatAvailableBooks(ctx.AvailableBooks, b.bookLimit), "")
	}
	if len(ctx.LibraryRules) > 0 {
		sections = append(sections, FormatLibraryRules(ctx.LibraryRules), "")
	}

	sections = append(sections, delim, closingRequest)
	return strings.Join(sections, "\n")
}

// bookLines renders one "id: title by author" line per candidate.
func bookLines(books []model.Book) string {
	lines := make([]string, 0, len(books))
	for _, b := range books {
		lines = append(lines, fmt.Sprintf("%s: %s by %s", b.ID, b.Title, b.Author))
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to n runes plus an ellipsis marker. Strings at or
// under the budget are returned unchanged.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n]) + "..."
	}
	return s
}
