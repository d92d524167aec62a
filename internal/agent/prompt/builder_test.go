package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-ai-gateway/internal/model"
)

func TestTruncate(t *testing.T) {
	t.Run("over budget", func(t *testing.T) {
		got := Truncate("abcdefghij", 4)
		assert.Equal(t, "abcd...", got)
		assert.Len(t, got, 4+3)
	})

	t.Run("at budget", func(t *testing.T) {
		assert.Equal(t, "abcd", Truncate("abcd", 4))
	})

	t.Run("under budget", func(t *testing.T) {
		assert.Equal(t, "ab", Truncate("ab", 4))
	})

	t.Run("multibyte runes count as one character", func(t *testing.T) {
		got := Truncate("深度學習入門", 2)
		assert.Equal(t, "深度...", got)
	})
}

func TestPersonalPrompt(t *testing.T) {
	b := NewBuilder()
	books := []model.Book{
		{ID: "001", Title: "深度學習", Author: "張三"},
		{ID: "002", Title: "Go 程式設計", Author: "李四"},
	}

	p := b.Personal([]string{"資料結構", "演算法"}, books)
	assert.Contains(t, p, "資料結構, 演算法")
	assert.Contains(t, p, "001: 深度學習 by 張三")
	assert.Contains(t, p, "002: Go 程式設計 by 李四")
	assert.Contains(t, p, "Return ONLY a JSON array")
}

func TestPersonalPromptNoHistory(t *testing.T) {
	p := NewBuilder().Personal(nil, []model.Book{{ID: "001", Title: "T", Author: "A"}})
	assert.Contains(t, p, "No history")
}

func TestRelatedPrompt(t *testing.T) {
	p := NewBuilder().Related(
		model.Book{Title: "深度學習", Author: "張三"},
		[]model.Book{{ID: "002", Title: "機器學習", Author: "李四"}},
	)
	assert.Contains(t, p, "For readers who liked: 深度學習 by 張三")
	assert.Contains(t, p, "002: 機器學習 by 李四")
}

func TestBuildSystemPromptNoData(t *testing.T) {
	b := NewBuilder()

	t.Run("nil context", func(t *testing.T) {
		assert.Equal(t, BaseSystemPrompt+NoDataNotice, b.BuildSystemPrompt(nil))
	})

	t.Run("hasData false", func(t *testing.T) {
		assert.Equal(t, BaseSystemPrompt+NoDataNotice, b.BuildSystemPrompt(&model.ChatContext{HasData: false}))
	})
}

func TestBuildSystemPromptSectionOrder(t *testing.T) {
	ctx := &model.ChatContext{
		HasData:           true,
		Stats:             &model.LibraryStats{TotalBooks: 20, AvailableBooks: 18, BorrowedBooks: 2},
		BorrowHistory:     []model.BorrowRecord{{BookID: "001", BookTitle: "深度學習", Status: model.StatusReturned}},
		CurrentBorrowings: []model.BorrowRecord{{BookID: "002", BookTitle: "演算法", Status: model.StatusBorrowed}},
		TargetBook:        &model.TargetBook{Book: model.Book{ID: "003", Title: "Python 入門", Author: "張三", Publisher: "XX出版社"}},
		AvailableBooks:    []model.Book{{ID: "004", Title: "Go 程式設計", Author: "李四", Publisher: "YY出版社"}},
		LibraryRules:      []model.LibraryRule{{Category: "借閱規則", Question: "借書期限是多久？", Answer: "14 天。"}},
	}

	p := NewBuilder().BuildSystemPrompt(ctx)

	require.True(t, strings.HasPrefix(p, BaseSystemPrompt))
	assert.True(t, strings.HasSuffix(p, "請基於以上資料回答使用者的問題。"))

	markers := []string{
		"圖書館統計資訊：",
		"借閱歷史記錄",
		"目前借閱中",
		"目標書籍資訊：",
		"可借閱書籍",
		"圖書館規則",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(p, marker)
		require.GreaterOrEqual(t, idx, 0, "section %q missing", marker)
		assert.Greater(t, idx, last, "section %q out of order", marker)
		last = idx
	}
}

func TestBuildSystemPromptSkipsAbsentSections(t *testing.T) {
	p := NewBuilder().BuildSystemPrompt(&model.ChatContext{
		HasData: true,
		Stats:   &model.LibraryStats{TotalBooks: 5, AvailableBooks: 5},
	})

	assert.Contains(t, p, "圖書館統計資訊：")
	assert.NotContains(t, p, "借閱歷史記錄")
	assert.NotContains(t, p, "圖書館規則")
}
