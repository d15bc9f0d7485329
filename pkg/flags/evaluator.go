package flags

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const changeSubscriptionBuffer = 42

// Evaluator holds the in-memory flag set and answers rollout queries.
// It is constructed once at startup and passed to consumers by
// injection; there is no package-level instance.
type Evaluator struct {
	logger    *zap.Logger
	tier      Tier
	lookupEnv func(key string) (string, bool)
	source    *FileSource

	baseRollouts map[Flag]int

	mutex       sync.RWMutex
	values      map[Flag]bool
	rollouts    map[Flag]int
	subscribers []ChangeSubscription
	initialized bool
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		values:       make(map[Flag]bool),
		baseRollouts: defaultRollouts(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	if e.tier == "" {
		e.tier = TierDevelopment
	}

	if e.lookupEnv == nil {
		e.lookupEnv = os.LookupEnv
	}

	return e
}

// Initialize builds the flag set from its layered sources: compiled-in
// defaults, the tier bundle, the optional overrides file and per-flag
// environment variables. Validation failures here are fatal; after a
// successful Initialize every read is a total function.
func (e *Evaluator) Initialize() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := e.rebuild(); err != nil {
		return err
	}

	e.initialized = true
	e.logger.Info("evaluator initialized",
		zap.String("tier", string(e.tier)),
		zap.Int("flags", len(e.values)),
	)
	return nil
}

func (e *Evaluator) Initialized() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.initialized
}

// Reload reapplies the layered sources. Runtime updates made through
// Update are discarded, as they are process-local experiments layered
// below nothing. Subscribers are notified for every flag whose
// effective value changed.
func (e *Evaluator) Reload() error {
	e.mutex.Lock()

	previous := e.values
	if err := e.rebuild(); err != nil {
		e.values = previous
		e.mutex.Unlock()
		return err
	}

	var changes []Change
	for flag, value := range e.values {
		if previous[flag] != value {
			changes = append(changes, Change{Flag: flag, Enabled: value})
		}
	}
	e.mutex.Unlock()

	for _, change := range changes {
		e.notify(change)
	}

	e.logger.Info("flags reloaded", zap.Int("changed", len(changes)))
	return nil
}

// rebuild recomputes values and rollouts from all layers.
// Caller must hold the write lock.
func (e *Evaluator) rebuild() error {
	values := defaultValues()
	for flag, value := range tierBundle(e.tier) {
		values[flag] = value
	}

	rollouts := make(map[Flag]int, len(e.baseRollouts))
	for flag, percentage := range e.baseRollouts {
		rollouts[flag] = percentage
	}

	if e.source != nil {
		overrides, err := e.source.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load overrides file")
		}
		if overrides != nil {
			for flag, value := range overrides.Flags {
				values[flag] = value
			}
			for flag, percentage := range overrides.Rollouts {
				rollouts[flag] = percentage
			}
		}
	}

	for _, flag := range allFlags {
		raw, found := e.lookupEnv(flag.EnvVar())
		if !found {
			continue
		}
		values[flag] = raw == "true"
	}

	for flag, percentage := range rollouts {
		if percentage < 0 || percentage > FullRollout {
			return errors.Errorf("rollout percentage out of range: %s=%d", flag, percentage)
		}
	}

	e.values = values
	e.rollouts = rollouts
	return nil
}

// IsEnabled returns the base value of a flag. Unrecognized names are
// reported as disabled, never as an error.
func (e *Evaluator) IsEnabled(flag Flag) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.values[flag]
}

// IsEnabledForUser evaluates a flag for a specific user. The base flag
// acts as a kill switch: when it is off the rollout table is not
// consulted. An empty userID falls back to the base value.
func (e *Evaluator) IsEnabledForUser(flag Flag, userID string) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	if !e.values[flag] {
		return false
	}

	if userID == "" {
		return true
	}

	return Bucket(userID) < e.rollout(flag)
}

// Update overwrites a flag for the remainder of the process lifetime.
// Last write wins; the change is not persisted anywhere.
func (e *Evaluator) Update(flag Flag, enabled bool) {
	if !flag.Known() {
		e.logger.Warn("ignoring update of unrecognized flag", zap.String("flag", flag.String()))
		return
	}

	e.mutex.Lock()
	e.values[flag] = enabled
	e.mutex.Unlock()

	e.logger.Info("flag updated",
		zap.String("flag", flag.String()),
		zap.Bool("enabled", enabled),
	)
	e.notify(Change{Flag: flag, Enabled: enabled})
}

// Snapshot returns a defensive copy of the flag set.
func (e *Evaluator) Snapshot() map[Flag]bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	snapshot := make(map[Flag]bool, len(e.values))
	for flag, value := range e.values {
		snapshot[flag] = value
	}
	return snapshot
}

// Rollout returns the configured rollout percentage for a flag.
func (e *Evaluator) Rollout(flag Flag) int {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.rollout(flag)
}

func (e *Evaluator) rollout(flag Flag) int {
	if percentage, found := e.rollouts[flag]; found {
		return percentage
	}
	return FullRollout
}

func (e *Evaluator) SubscribeToChanges() ChangeSubscription {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	subscription := make(ChangeSubscription, changeSubscriptionBuffer)
	e.subscribers = append(e.subscribers, subscription)
	return subscription
}

func (e *Evaluator) notify(change Change) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	for _, subscriber := range e.subscribers {
		select {
		case subscriber <- change:
		default:
			e.logger.Warn("dropping change notification, subscriber is not reading",
				zap.String("flag", change.Flag.String()))
		}
	}
}

func (e *Evaluator) Stop() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	for _, subscriber := range e.subscribers {
		close(subscriber)
	}
	e.subscribers = nil
}
