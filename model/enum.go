package model

import (
	"fmt"

	"twscreener/customerrors"
)

type Card string

const (
	CardMarket    Card = "market"
	CardFinancial Card = "financial"
	CardLongTerm  Card = "longTerm"
	CardNews      Card = "news"
)

// ScanOrder is the fixed order of the aggregate scan, fastest first.
var ScanOrder = []Card{CardMarket, CardFinancial, CardLongTerm, CardNews}

func ParseCard(raw string) (Card, error) {
	for _, c := range ScanOrder {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", customerrors.ErrUnknownCard, raw)
}

type CardStatus string

const (
	CardIdle    CardStatus = "idle"
	CardLoading CardStatus = "loading"
	CardSuccess CardStatus = "success"
	CardError   CardStatus = "error"
)
