package model

// カートの明細1行。titleがカート内の一意キー。
// JSONのフィールド名は保存レイアウト（cartItemsキー）に合わせて固定。
type CartItem struct {
	Title      string `json:"title"`
	Price      string `json:"price"` // 表示価格（例 "$12.99"）
	ProductImg string `json:"productImg"`
	Quantity   int64  `json:"quantity"`
}

// カート全体のスナップショット。Totalはセント単位。
type CartSnapshot struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}
