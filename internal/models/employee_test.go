package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetRatingClamps(t *testing.T) {
	e := Employee{ID: 1, Name: "Test", Wage: DefaultMinimumWage, Rating: 5, Role: RoleCook}

	e.SetRating(8)
	assert.Equal(t, 8, e.Rating)

	e.SetRating(-3)
	assert.Equal(t, 1, e.Rating)

	e.SetRating(99)
	assert.Equal(t, 10, e.Rating)

	e.SetRating(0)
	assert.Equal(t, 1, e.Rating)

	e.SetRating(11)
	assert.Equal(t, 10, e.Rating)
}

func TestSetID(t *testing.T) {
	e := Employee{ID: 4821}
	e.SetID(4)
	assert.Equal(t, int64(4), e.ID)
}
