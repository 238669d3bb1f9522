package model

// Item は greeting サービスの POST /items/ の入力。
// descriptionとtaxは任意。
type Item struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax"`
}
