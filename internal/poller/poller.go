package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/gamethread"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
)

const (
	defaultInterval = time.Minute
	readyFailures   = 3
)

// ErrRunInProgress is returned by runners that refuse to wait for a run
// already underway.
var ErrRunInProgress = errors.New("run already in progress")

// Runner executes one bot invocation.
type Runner interface {
	Run(ctx context.Context, now time.Time) (gamethread.Report, error)
}

// Poller invokes the runner immediately and then on a fixed interval. A run
// still in progress when the next tick fires causes that tick to be skipped.
type Poller struct {
	runner   Runner
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	cron     *cron.Cron
	initial  sync.WaitGroup
	cancel   context.CancelFunc
	drained  chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	stopped  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the run loop.
type Status struct {
	Interval            time.Duration      `json:"intervalNs"`
	Runs                int                `json:"runs"`
	ConsecutiveFailures int                `json:"consecutiveFailures"`
	LastError           string             `json:"lastError,omitempty"`
	LastAttempt         time.Time          `json:"lastAttempt"`
	LastSuccess         time.Time          `json:"lastSuccess"`
	LastReport          *gamethread.Report `json:"lastReport,omitempty"`
}

// IsReady reports whether a run has succeeded and runs are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailures
}

// New constructs a Poller. A non-positive interval uses one minute.
func New(runner Runner, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		runner:   runner,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		drained:  make(chan struct{}),
		status:   Status{Interval: interval},
	}
}

// Start begins running until the context is cancelled or Stop is called.
// It does nothing once the poller has been stopped.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)
	cronLog := cronLogger{logger: p.logger}
	job := cron.NewChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)).
		Then(cron.FuncJob(func() { p.runOnce(ctx) }))

	p.cron = cron.New(cron.WithLogger(cronLog))
	p.cron.Schedule(cron.Every(p.interval), job)
	p.cron.Start()
	logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())

	p.initial.Add(1)
	go func() {
		defer p.initial.Done()
		job.Run()
	}()
	go func() {
		<-ctx.Done()
		_ = p.Stop(context.Background())
	}()
}

// Stop halts the schedule and waits for an in-flight run to finish. If ctx
// expires first the run's context is cancelled and ctx.Err is returned.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.startMu.Lock()
		p.stopped = true
		c := p.cron
		p.startMu.Unlock()
		go func() {
			if c != nil {
				<-c.Stop().Done()
			}
			p.initial.Wait()
			close(p.drained)
		}()
	})

	var err error
	select {
	case <-p.drained:
	case <-ctx.Done():
		err = ctx.Err()
	}

	p.startMu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		logging.Info(p.logger, "poller stopped")
	}
	p.startMu.Unlock()
	return err
}

func (p *Poller) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	at := p.now()
	p.recordAttempt(at)
	report, err := p.runner.Run(ctx, at)
	if err != nil {
		p.recordFailure(err, report)
		return
	}
	p.recordSuccess(at, report)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Runs++
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, report gamethread.Report) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastReport = &report
}

func (p *Poller) recordFailure(err error, report gamethread.Report) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
	p.status.LastReport = &report
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
