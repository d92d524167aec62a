package prompt

// BaseSystemPrompt is the fixed instruction every chat request starts from.
// Live library data, when available, is appended section by section after it.
const BaseSystemPrompt = `你是一個專業的圖書館 AI 助理，負責協助使用者處理圖書館相關問題。

你的職責：
1. 回答圖書館規則和常見問題
2. 協助使用者查詢書籍資訊
3. 提供借閱歷史查詢
4. 說明借還書流程
5. 提供圖書館統計資訊

回答原則：
- 基於以下提供的即時資料回答問題
- 如果資料中沒有相關資訊，誠實告知使用者
- 回答要簡潔、準確、友善
- 使用繁體中文回答
- 涉及具體書籍時，提供書籍 ID 方便使用者操作`

// NoDataNotice is appended when no usable context accompanies the request.
const NoDataNotice = "\n\n注意：目前沒有提供額外的圖書館資料，請根據一般常識回答。"

const (
	dataHeader     = "以下是即時圖書館資料："
	closingRequest = "請基於以上資料回答使用者的問題。"
)

// Recommendation prompts. The response contract (a bare JSON array with
// book_id/reason/score) is spelled out with examples because small local
// models follow examples far better than prose.
const personalTemplate = `Based on reading history: %s

Recommend 3 books from this list:
%s

Return ONLY a JSON array like this (no markdown, no explanation):
[
  {"book_id": "001", "reason": "推薦理由（中文）", "score": 0.85},
  {"book_id": "002", "reason": "推薦理由（中文）", "score": 0.80},
  {"book_id": "003", "reason": "推薦理由（中文）", "score": 0.75}
]`

const relatedTemplate = `For readers who liked: %s by %s

Recommend 3 related books from:
%s

Return ONLY a JSON array (no markdown):
[
  {"book_id": "002", "reason": "相關理由（中文）", "score": 0.8},
  {"book_id": "003", "reason": "相關理由（中文）", "score": 0.75},
  {"book_id": "004", "reason": "相關理由（中文）", "score": 0.70}
]`

// Sentinels rendered instead of empty list sections.
const (
	noHistorySentinel    = "無借閱記錄。"
	noBorrowingsSentinel = "目前沒有借閱中的書籍。"
	noBooksSentinel      = "目前沒有可借閱的書籍。"
	noRulesSentinel      = "無相關規則。"
)
