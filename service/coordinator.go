package service

import (
	"sync"
	"time"

	"twscreener/model"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// CardResult carries the payload of one finished card query. Only the field
// matching the card is read.
type CardResult struct {
	Scanner []model.ScannerResult
	Market  []model.MarketResult
	News    *model.NewsResponse
}

// Coordinator owns the state of every dashboard card. Each Begin issues a
// new generation; Complete and Fail are applied only for the latest one.
type Coordinator struct {
	mu     sync.Mutex
	cards  map[model.Card]*model.CardState
	now    func() time.Time
	banner string
}

func NewCoordinator() *Coordinator {
	c := &Coordinator{
		cards: make(map[model.Card]*model.CardState, len(model.ScanOrder)),
		now:   time.Now,
	}
	for _, card := range model.ScanOrder {
		c.cards[card] = &model.CardState{Card: card, Status: model.CardIdle}
	}
	return c
}

// Begin marks the card loading and returns the generation the caller must
// hand back on completion.
func (c *Coordinator) Begin(card model.Card) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.cards[card]
	state.Generation++
	state.Loading = true
	state.Status = model.CardLoading
	state.Error = ""
	return state.Generation
}

// Complete replaces the card data. It reports false when gen is stale.
func (c *Coordinator) Complete(card model.Card, gen uint64, result CardResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.cards[card]
	if state.Generation != gen {
		log.Debug().Str("card", string(card)).Uint64("gen", gen).Uint64("latest", state.Generation).Msg("Discarding stale result")
		return false
	}

	switch card {
	case model.CardMarket:
		state.Market = result.Market
	case model.CardNews:
		state.News = result.News
	default:
		state.Scanner = result.Scanner
	}
	now := c.now()
	state.UpdatedAt = &now
	state.HasData = true
	state.Loading = false
	state.Status = model.CardSuccess
	state.Error = ""
	return true
}

// Fail records err on the card and keeps its previous data. It reports
// false when gen is stale.
func (c *Coordinator) Fail(card model.Card, gen uint64, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.cards[card]
	if state.Generation != gen {
		log.Debug().Str("card", string(card)).Uint64("gen", gen).Uint64("latest", state.Generation).Msg("Discarding stale failure")
		return false
	}

	state.Loading = false
	state.Status = model.CardError
	state.Error = err.Error()
	return true
}

func (c *Coordinator) SetBanner(msg string) {
	c.mu.Lock()
	c.banner = msg
	c.mu.Unlock()
}

func (c *Coordinator) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// Card returns a deep copy of one card state.
func (c *Coordinator) Card(card model.Card) model.CardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.cards[card])
}

// Cards returns deep copies of every card in scan order.
func (c *Coordinator) Cards() []model.CardState {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.CardState, 0, len(model.ScanOrder))
	for _, card := range model.ScanOrder {
		out = append(out, cloneState(c.cards[card]))
	}
	return out
}

func cloneState(src *model.CardState) model.CardState {
	var dst model.CardState
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Str("card", string(src.Card)).Msg("Card snapshot copy failed")
		return *src
	}
	// time.Time has no exported fields for copier to walk
	if src.UpdatedAt != nil {
		t := *src.UpdatedAt
		dst.UpdatedAt = &t
	}
	return dst
}
