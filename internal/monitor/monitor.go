package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ReadinessMonitor probes each target on a fixed interval. A probe that does
// not succeed within the timeout counts as a failure; after Retries
// consecutive failures the target is marked unhealthy. Any success marks it
// healthy and resets the streak.
type ReadinessMonitor struct {
	interval time.Duration
	timeout  time.Duration
	retries  int
	targets  []Target
	log      zerolog.Logger

	mu     sync.RWMutex
	states map[string]TargetState
}

func NewReadinessMonitor(interval time.Duration, timeout time.Duration, retries int, log zerolog.Logger, targets ...Target) *ReadinessMonitor {
	states := make(map[string]TargetState, len(targets))
	for _, t := range targets {
		states[t.Name] = TargetState{
			Name:          t.Name,
			ComponentType: t.ComponentType,
			Status:        StatusUnknown,
		}
	}
	return &ReadinessMonitor{
		interval: interval,
		timeout:  timeout,
		retries:  retries,
		targets:  targets,
		log:      log,
		states:   states,
	}
}

// Start blocks until ctx is cancelled. The first probe round runs
// immediately so /v1/health is meaningful right after startup.
func (m *ReadinessMonitor) Start(ctx context.Context) error {
	m.probeAll(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.probeAll(ctx)
		}
	}
}

func (m *ReadinessMonitor) probeAll(ctx context.Context) {
	for _, t := range m.targets {
		m.probeOne(ctx, t)
	}
}

func (m *ReadinessMonitor) probeOne(ctx context.Context, t Target) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	err := t.Probe(probeCtx)
	latency := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.states[t.Name]
	st.LatencyMs = latency.Milliseconds()
	st.LastChecked = time.Now().UTC()

	if err != nil {
		st.FailStreak++
		st.LastError = err.Error()
		if st.FailStreak >= m.retries {
			if st.Status != StatusUnhealthy {
				m.log.Error().Str("target", t.Name).Int("streak", st.FailStreak).Err(err).Msg("target unhealthy")
			}
			st.Status = StatusUnhealthy
		}
	} else {
		if st.Status == StatusUnhealthy {
			m.log.Info().Str("target", t.Name).Msg("target recovered")
		}
		st.FailStreak = 0
		st.LastError = ""
		st.Status = StatusHealthy
	}

	m.states[t.Name] = st
}

// States returns a stable-ordered copy of the per-target states.
func (m *ReadinessMonitor) States() []TargetState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]TargetState, 0, len(m.targets))
	for _, t := range m.targets {
		out = append(out, m.states[t.Name])
	}
	return out
}

// Healthy reports whether no target is currently unhealthy.
func (m *ReadinessMonitor) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, st := range m.states {
		if st.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
