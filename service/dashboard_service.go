package service

import (
	"context"
	"sync/atomic"
	"time"

	"twscreener/customerrors"
	"twscreener/model"

	"github.com/rs/zerolog/log"
)

type DashboardService interface {
	RunCard(ctx context.Context, card model.Card) (model.CardState, error)
	ScanAll(ctx context.Context) error
	StartScanAll() error
	Scanning() bool
	Card(card model.Card) model.CardState
	Snapshot() model.DashboardSnapshot
	FinancialView() []model.ScannerResult
	LongTermView() []model.ScannerResult
	MarketView() []model.MarketView
}

type DashboardServiceImpl struct {
	query    QueryService
	coord    *Coordinator
	scanning atomic.Bool
}

func NewDashboardService(query QueryService, coord *Coordinator) DashboardService {
	return &DashboardServiceImpl{
		query: query,
		coord: coord,
	}
}

// RunCard refreshes one card. The card leaves the loading state on every
// path, including a panic in the query.
func (s *DashboardServiceImpl) RunCard(ctx context.Context, card model.Card) (model.CardState, error) {
	if _, err := model.ParseCard(string(card)); err != nil {
		return model.CardState{}, err
	}
	gen := s.coord.Begin(card)
	settled := false
	defer func() {
		if !settled {
			s.coord.Fail(card, gen, customerrors.ErrCardAborted)
		}
	}()

	start := time.Now()
	result, err := s.fetch(ctx, card)
	settled = true
	if err != nil {
		s.coord.Fail(card, gen, err)
		log.Warn().Err(err).Str("card", string(card)).Dur("latency", time.Since(start)).Msg("Card scan failed")
		return s.coord.Card(card), err
	}

	s.coord.Complete(card, gen, result)
	log.Info().Str("card", string(card)).Dur("latency", time.Since(start)).Msg("Card scan complete")
	return s.coord.Card(card), nil
}

func (s *DashboardServiceImpl) fetch(ctx context.Context, card model.Card) (CardResult, error) {
	switch card {
	case model.CardMarket:
		rows, err := s.query.ScanMarketStatus(ctx)
		return CardResult{Market: rows}, err
	case model.CardFinancial:
		rows, err := s.query.ScanFinancialStocks(ctx, false)
		return CardResult{Scanner: rows}, err
	case model.CardLongTerm:
		rows, err := s.query.ScanFinancialStocks(ctx, true)
		return CardResult{Scanner: rows}, err
	case model.CardNews:
		news, err := s.query.FetchMarketNews(ctx)
		return CardResult{News: news}, err
	default:
		return CardResult{}, customerrors.ErrUnknownCard
	}
}

// ScanAll refreshes every card in ScanOrder and blocks until done.
func (s *DashboardServiceImpl) ScanAll(ctx context.Context) error {
	if !s.scanning.CompareAndSwap(false, true) {
		return customerrors.ErrScanInProgress
	}
	defer s.scanning.Store(false)
	return s.scanAll(ctx)
}

// StartScanAll launches ScanAll in the background. Only the in-progress
// check is synchronous.
func (s *DashboardServiceImpl) StartScanAll() error {
	if !s.scanning.CompareAndSwap(false, true) {
		return customerrors.ErrScanInProgress
	}
	go func() {
		defer s.scanning.Store(false)
		if err := s.scanAll(context.Background()); err != nil {
			log.Error().Err(err).Msg("Background scan finished with error")
		}
	}()
	return nil
}

func (s *DashboardServiceImpl) scanAll(ctx context.Context) (err error) {
	s.coord.SetBanner("")
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("PANIC_RECOVERED during full scan")
			s.coord.SetBanner(customerrors.AggregateScanBanner)
			err = customerrors.ErrAggregateScan
		}
	}()

	start := time.Now()
	failed := 0
	for _, card := range model.ScanOrder {
		if stepErr := s.runStep(ctx, card); stepErr != nil {
			failed++
		}
	}
	log.Info().Int("failed", failed).Dur("latency", time.Since(start)).Msg("Full scan complete")
	return nil
}

// runStep refreshes one card of the full scan. A panic is contained to the
// step so the remaining cards still run.
func (s *DashboardServiceImpl) runStep(ctx context.Context, card model.Card) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("card", string(card)).Msg("PANIC_RECOVERED in scan step")
			err = customerrors.ErrCardAborted
		}
	}()
	_, err = s.RunCard(ctx, card)
	return err
}

func (s *DashboardServiceImpl) Scanning() bool {
	return s.scanning.Load()
}

func (s *DashboardServiceImpl) Card(card model.Card) model.CardState {
	return s.coord.Card(card)
}

func (s *DashboardServiceImpl) Snapshot() model.DashboardSnapshot {
	cards := s.coord.Cards()
	busy := false
	for _, c := range cards {
		busy = busy || c.Loading
	}
	return model.DashboardSnapshot{
		Scanning: s.Scanning(),
		Banner:   s.coord.Banner(),
		AnyBusy:  busy,
		Cards:    cards,
		Summary:  Summarize(cards),
	}
}

func (s *DashboardServiceImpl) FinancialView() []model.ScannerResult {
	return SortFinancial(s.coord.Card(model.CardFinancial).Scanner)
}

func (s *DashboardServiceImpl) LongTermView() []model.ScannerResult {
	return LongTermTargets(s.coord.Card(model.CardLongTerm).Scanner)
}

func (s *DashboardServiceImpl) MarketView() []model.MarketView {
	return MarketViews(s.coord.Card(model.CardMarket).Market)
}
