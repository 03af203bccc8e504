// Package dashboard derives the read-only dashboard view from an account
// document and keeps a renderer in sync with live account changes.
package dashboard

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/history"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// Renderer displays dashboard views.
type Renderer interface {
	Render(view models.DashboardView) // Shows a new view
	Clear()                           // Resets every displayed field to zero or empty
}

// AccountSubscriber is the live account change feed.
type AccountSubscriber interface {
	Subscribe(ctx context.Context, id uuid.UUID, onChange func(*models.Account), onError func(error)) (func(), error)
}

// Project computes the dashboard view of acct. A nil account yields the zero view.
func Project(acct *models.Account) models.DashboardView {
	if acct == nil {
		return models.DashboardView{Recent: []models.LedgerEntry{}}
	}

	// Legacy documents without dailyProfit show their totalProfit instead.
	profit := acct.DailyProfit
	if !acct.HasDailyProfit && acct.TotalProfit != nil {
		profit = *acct.TotalProfit
	}

	return models.DashboardView{
		Balance:       acct.Balance,
		Profit:        profit,
		ActiveCount:   len(acct.Plans),
		TotalDeposit:  acct.TotalDeposit,
		TotalWithdraw: acct.TotalWithdraw,
		Recent:        history.Merge(acct.DepositHistory, acct.WithdrawHistory, history.DefaultLimit),
	}
}

// Presenter binds one account's change feed to a renderer. At most one
// subscription is active at a time.
type Presenter struct {
	feed     AccountSubscriber
	renderer Renderer

	mu          sync.Mutex
	active      uuid.UUID
	unsubscribe func()

	// generation invalidates callbacks of subscriptions that were stopped.
	generation atomic.Uint64
	renderMu   sync.Mutex
}

// NewPresenter creates a Presenter rendering to renderer.
func NewPresenter(feed AccountSubscriber, renderer Renderer) *Presenter {
	return &Presenter{feed: feed, renderer: renderer}
}

// Start subscribes to the account of uid. Starting the account that is
// already active does nothing; starting another one stops the current
// subscription first. A nil uid behaves like Stop.
func (p *Presenter) Start(ctx context.Context, uid uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if uid == uuid.Nil {
		p.stopLocked()
		return nil
	}
	if p.unsubscribe != nil && p.active == uid {
		return nil
	}
	p.stopLocked()

	gen := p.generation.Add(1)
	unsubscribe, err := p.feed.Subscribe(ctx, uid,
		func(acct *models.Account) {
			p.deliver(gen, func() { p.renderer.Render(Project(acct)) })
		},
		func(err error) {
			logger.Log.Errorw("dashboard subscription error", "userID", uid, "error", err)
			p.deliver(gen, p.renderer.Clear)
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to start dashboard subscription", "userID", uid, "error", err)
		p.deliver(gen, p.renderer.Clear)
		return err
	}

	p.active = uid
	p.unsubscribe = unsubscribe
	return nil
}

// Stop releases the active subscription and clears the renderer. It is
// safe to call when nothing is active.
func (p *Presenter) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Active returns the account currently subscribed to, or uuid.Nil.
func (p *Presenter) Active() uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Presenter) stopLocked() {
	p.generation.Add(1)
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.active = uuid.Nil

	p.renderMu.Lock()
	p.renderer.Clear()
	p.renderMu.Unlock()
}

func (p *Presenter) deliver(gen uint64, render func()) {
	p.renderMu.Lock()
	defer p.renderMu.Unlock()
	if p.generation.Load() != gen {
		return
	}
	render()
}
