package lateralload

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
)

// State is the lifecycle state of a Runner.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is delivered to a Runner's observer on every state change.
type Event struct {
	RunID  string
	State  State
	Result *models.Result
	Err    error
}

// Runner executes Process in the background and exposes its progress as a
// State, so an interactive front end can stay responsive while a run is in
// flight. Only one run may be active at a time.
type Runner struct {
	onChange func(Event)
	process  func(context.Context, Options) (*models.Result, error)

	mu     sync.Mutex
	state  State
	runID  string
	result *models.Result
	err    error
	done   chan struct{}
}

// NewRunner creates an idle runner. onChange may be nil; it is called from
// the run goroutine and must not call back into Start.
func NewRunner(onChange func(Event)) *Runner {
	return &Runner{onChange: onChange, process: Process}
}

// Start launches a run and returns its id. ErrRunInProgress is returned
// while another run is active.
func (r *Runner) Start(ctx context.Context, opts Options) (string, error) {
	r.mu.Lock()
	if r.state == StateRunning {
		r.mu.Unlock()
		return "", ErrRunInProgress
	}
	runID := uuid.NewString()
	r.state = StateRunning
	r.runID = runID
	r.result, r.err = nil, nil
	done := make(chan struct{})
	r.done = done
	r.mu.Unlock()

	r.notify(Event{RunID: runID, State: StateRunning})

	go func() {
		defer close(done)

		logger := log.With().Str("run_id", runID).Logger()
		result, err := r.process(logger.WithContext(ctx), opts)

		state := StateSucceeded
		if err != nil {
			state = StateFailed
			logger.Debug().Err(err).Msg("run failed")
		}

		r.mu.Lock()
		r.state = state
		r.result, r.err = result, err
		r.mu.Unlock()

		r.notify(Event{RunID: runID, State: state, Result: result, Err: err})
	}()

	return runID, nil
}

// State returns the current state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until the current run finishes and returns its outcome. It
// returns immediately with the last outcome when no run is active.
func (r *Runner) Wait() (*models.Result, error) {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done != nil {
		<-done
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result, r.err
}

func (r *Runner) notify(e Event) {
	if r.onChange != nil {
		r.onChange(e)
	}
}
