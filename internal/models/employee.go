package models

// Role is the position an employee works.
type Role string

type Employee struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Wage   float64 `json:"wage"`
	Rating int     `json:"rating"` // 1 to 10
	Role   Role    `json:"role"`
}

// SetRating stores the rating, clamped into [1, 10].
func (e *Employee) SetRating(rating int) {
	if rating < MinRating {
		rating = MinRating
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	e.Rating = rating
}

// SetID rekeys the employee; used only when a candidate is hired.
func (e *Employee) SetID(id int64) {
	e.ID = id
}
