package core

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAmount is returned for non-numeric or negative gold input.
	ErrInvalidAmount = errors.New("invalid gold amount")
	// ErrInsufficientGold is returned when the player offers more than they hold.
	ErrInsufficientGold = errors.New("not enough gold")
)

// Purchase is the result of exchanging gold for bonus durability.
type Purchase struct {
	Offered int // Gold the player typed in
	Spent   int // Gold actually deducted
	Seconds int // Bonus durability gained
}

// Exchange converts gold into whole seconds of bonus durability.
// Only multiples of price are spent; the remainder stays with the player.
func Exchange(currency, gold, price int) (Purchase, error) {
	if gold < 0 || price <= 0 {
		return Purchase{}, ErrInvalidAmount
	}
	if gold > currency {
		return Purchase{}, ErrInsufficientGold
	}
	seconds := gold / price
	return Purchase{
		Offered: gold,
		Spent:   seconds * price,
		Seconds: seconds,
	}, nil
}

// ParseGold parses typed gold input. Empty input means zero.
func ParseGold(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidAmount
	}
	return n, nil
}
