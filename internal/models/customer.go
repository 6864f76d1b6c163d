package models

// Customer is a purchasing agent generated fresh for a single simulated
// day and discarded afterwards. Every customer tries to buy a burger;
// fries and soda only if they like them.
type Customer struct {
	Cash       float64 `json:"cash"`
	LikesFries bool    `json:"likes_fries"`
	LikesSoda  bool    `json:"likes_soda"`
}
