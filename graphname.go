package graphname

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/graphname/internal/logging"
	"github.com/aretw0/graphname/pkg/store"
)

// DefaultName is the graph name before anything is selected.
const DefaultName = "blank"

// Store names reported in hook events.
const (
	CellStoreName = "graph_name"
	ViewStoreName = "graph_name_view"
)

// Selection owns the graph name cell and its derived view.
type Selection struct {
	// Name is the writable cell.
	Name *store.Writable[string]

	// View mirrors Name and cannot be written.
	View *store.Derived[string, string]

	initial string
	logger  *slog.Logger
}

type config struct {
	initial       string
	skipUnchanged bool
	hooks         []store.Hooks
	logger        *slog.Logger
}

// Option defines a functional option for configuring a Selection.
type Option func(*config)

// WithInitialName overrides DefaultName.
func WithInitialName(name string) Option {
	return func(c *config) {
		c.initial = name
	}
}

// WithSkipUnchanged suppresses notifications when the same name is selected twice.
func WithSkipUnchanged() Option {
	return func(c *config) {
		c.skipUnchanged = true
	}
}

// WithHooks registers observability hooks on both the cell and the view.
// It may be given more than once; hooks run in registration order.
func WithHooks(hooks store.Hooks) Option {
	return func(c *config) {
		c.hooks = append(c.hooks, hooks)
	}
}

// WithLogger sets a structured logger. Store events are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a Selection holding DefaultName.
func New(opts ...Option) *Selection {
	cfg := config{
		initial: DefaultName,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	hooks := store.MergeHooks(append([]store.Hooks{logging.Hooks(cfg.logger)}, cfg.hooks...)...)

	cellOpts := []store.Option{store.WithName(CellStoreName), store.WithHooks(hooks)}
	if cfg.skipUnchanged {
		cellOpts = append(cellOpts, store.SkipUnchanged())
	}
	cell := store.New(cfg.initial, cellOpts...)

	return &Selection{
		Name:    cell,
		View:    store.Derive[string, string](cell, store.Identity[string], store.WithName(ViewStoreName), store.WithHooks(hooks)),
		initial: cfg.initial,
		logger:  cfg.logger,
	}
}

// Current returns the selected graph name as seen through the view.
func (s *Selection) Current() string {
	return s.View.Get()
}

// Select writes name to the cell.
func (s *Selection) Select(name string) {
	s.Name.Set(name)
}

// SelectAny writes v if it is a string and fails with ErrTypeMismatch otherwise.
func (s *Selection) SelectAny(v any) error {
	name, ok := v.(string)
	if !ok {
		err := fmt.Errorf("%w: graph name must be a string, got %T", ErrTypeMismatch, v)
		s.logger.Warn("rejected graph name", "error", err)
		return err
	}
	s.Select(name)
	return nil
}

// Initial returns the name the Selection started with.
func (s *Selection) Initial() string {
	return s.initial
}

// Reset selects the initial name again.
func (s *Selection) Reset() {
	s.Select(s.initial)
}
