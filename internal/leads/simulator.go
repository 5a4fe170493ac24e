package leads

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"callboard/internal/utils"
	"callboard/pkg/types"

	"github.com/sirupsen/logrus"
)

// Simulator produces synthetic CRM leads on a jittered ticker for the
// dashboard's live panel. Leads exist only in memory, in a bounded ring;
// this is a UI affordance, not a pipeline.

const defaultCapacity = 25

var (
	leadNames = []string{
		"Ava Moreno", "Dex Okafor", "June Park", "Theo Lindqvist", "Priya Nair",
		"Marcus Webb", "Sofia Reyes", "Kai Tanaka", "Nina Volkov", "Omar Haddad",
	}
	leadChannels  = []string{"instagram", "portfolio", "referral", "tiktok", "newsletter"}
	leadInterests = []string{
		"album cover commission", "wedding videography", "brand photoshoot",
		"podcast studio rental", "logo redesign", "live session tickets",
		"voiceover session", "mural commission",
	}
)

type Simulator struct {
	logger   logrus.FieldLogger
	interval time.Duration
	rng      *rand.Rand

	mu    sync.Mutex
	ring  []types.Lead
	start int
	count int
}

func NewSimulator(logger logrus.FieldLogger, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = 8 * time.Second
	}
	return &Simulator{
		logger:   logger,
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		ring:     make([]types.Lead, defaultCapacity),
	}
}

// Run generates leads until the context is cancelled. Intervals are jittered
// by up to half the base interval so the stream doesn't look metronomic.
func (s *Simulator) Run(ctx context.Context) {
	timer := time.NewTimer(s.nextInterval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("lead simulator stopped")
			return
		case <-timer.C:
			lead := s.generate()
			s.append(lead)
			s.logger.WithField("lead_id", lead.ID).Debug("generated lead")
			timer.Reset(s.nextInterval())
		}
	}
}

// Recent returns up to n leads, newest first.
func (s *Simulator) Recent(n int) []types.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n > s.count {
		n = s.count
	}
	out := make([]types.Lead, 0, n)
	for i := 0; i < n; i++ {
		idx := (s.start + s.count - 1 - i) % len(s.ring)
		out = append(out, s.ring[idx])
	}
	return out
}

// Capture records a real lead submitted through the contact form. It lands
// in the same ring the simulator fills, so the dashboard shows both.
func (s *Simulator) Capture(name, channel, interest string, budgetCents int) types.Lead {
	lead := types.Lead{
		ID:          utils.NanoIDSize(12),
		Name:        name,
		Channel:     channel,
		Interest:    interest,
		BudgetCents: budgetCents,
		CreatedAt:   time.Now(),
	}
	s.append(lead)
	return lead
}

func (s *Simulator) append(lead types.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := (s.start + s.count) % len(s.ring)
	s.ring[idx] = lead
	if s.count < len(s.ring) {
		s.count++
	} else {
		s.start = (s.start + 1) % len(s.ring)
	}
}

func (s *Simulator) generate() types.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.Lead{
		ID:          utils.NanoIDSize(12),
		Name:        leadNames[s.rng.Intn(len(leadNames))],
		Channel:     leadChannels[s.rng.Intn(len(leadChannels))],
		Interest:    leadInterests[s.rng.Intn(len(leadInterests))],
		BudgetCents: (50 + s.rng.Intn(950)) * 1000, // $500 to $9,990
		CreatedAt:   time.Now(),
	}
}

func (s *Simulator) nextInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	jitter := time.Duration(s.rng.Int63n(int64(s.interval)/2 + 1))
	return s.interval/2 + jitter
}
