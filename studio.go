package archstudio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/zero-day-ai/archstudio/assess"
	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
	"github.com/zero-day-ai/archstudio/export"
	"github.com/zero-day-ai/archstudio/session"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Studio is the high-level entry point to the architecture engine. It wraps
// the pure evaluators with a catalog, session storage, structured logging,
// and optional OpenTelemetry instrumentation.
//
// A Studio is safe for concurrent use: the catalog is immutable, the
// session store is synchronized, and the evaluators are pure. Callers own
// the designs they pass in; Evaluate and Simulate only read them.
type Studio struct {
	catalog  *catalog.Catalog
	sessions session.Store
	briefs   []catalog.DesignScenario
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	metrics  *otelMetrics
}

// Assessment is the combined outcome of scoring and gap analysis.
type Assessment struct {
	// Score is the 0..100 coverage score.
	Score int `json:"score"`

	// Findings are the gap findings in rule-table order.
	Findings []assess.Finding `json:"findings"`
}

// FlowCheck is the trust-jump policy verdict for one prospective data flow.
type FlowCheck struct {
	// Jump is the absolute trust-level difference between the zones.
	Jump int `json:"jump"`

	// Warn is true when the jump exceeds the threshold and the flow
	// deserves an intermediary.
	Warn bool `json:"warn"`

	// Recommendation is the remediation advice when Warn is set.
	Recommendation string `json:"recommendation,omitempty"`
}

// New creates a Studio. A nil catalog selects the builtin default catalog.
//
// Example:
//
//	studio, err := archstudio.New(nil,
//	    archstudio.WithLogger(logger),
//	    archstudio.WithSessionStore(store),
//	)
func New(cat *catalog.Catalog, opts ...Option) (*Studio, error) {
	cfg := &studioConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cat == nil {
		cat = catalog.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.sessions == nil {
		cfg.sessions = session.NewMemoryStore()
	}
	if cfg.briefs == nil {
		cfg.briefs = catalog.DefaultDesignScenarios()
	}

	metrics, err := initOTelMetrics(cfg.meter)
	if err != nil {
		return nil, &Error{Op: "New", Kind: KindInternal, Err: err}
	}

	return &Studio{
		catalog:  cat,
		sessions: cfg.sessions,
		briefs:   cfg.briefs,
		logger:   cfg.logger,
		tracer:   cfg.tracer,
		meter:    cfg.meter,
		metrics:  metrics,
	}, nil
}

// Catalog returns the studio's catalog.
func (s *Studio) Catalog() *catalog.Catalog {
	return s.catalog
}

// Sessions returns the studio's session store.
func (s *Studio) Sessions() session.Store {
	return s.sessions
}

// Briefs returns the engagement briefs known to the studio.
func (s *Studio) Briefs() []catalog.DesignScenario {
	return append([]catalog.DesignScenario(nil), s.briefs...)
}

// Brief returns the named engagement brief.
// Returns ErrBriefNotFound if no brief has that name.
func (s *Studio) Brief(name string) (catalog.DesignScenario, error) {
	for _, b := range s.briefs {
		if b.Name == name {
			return b, nil
		}
	}
	return catalog.DesignScenario{}, &Error{
		Op:   "Studio.Brief",
		Kind: KindNotFound,
		Err:  ErrBriefNotFound,
		Context: map[string]any{
			"brief": name,
		},
	}
}

// Evaluate runs the coverage scorer and gap analyzer over a design.
// Returns ErrNilDesign for a nil design.
func (s *Studio) Evaluate(ctx context.Context, d *design.State) (Assessment, error) {
	if d == nil {
		return Assessment{}, &Error{Op: "Studio.Evaluate", Kind: KindValidation, Err: ErrNilDesign}
	}

	a := Assessment{
		Score:    assess.Score(d, s.catalog),
		Findings: assess.Analyze(d, s.catalog),
	}

	s.recordEvaluation(ctx, a)
	s.logger.InfoContext(ctx, "design evaluated",
		slog.Int("score", a.Score),
		slog.Int("findings", len(a.Findings)),
		slog.Int("zones", len(d.SelectedZones())),
		slog.Int("flows", len(d.Flows())),
	)

	return a, nil
}

// Simulate runs the named catalog attack scenario against a design.
// Returns ErrScenarioNotFound for an unknown scenario name and the
// simulator's UnknownReferenceError (kind KindUnknownReference) when the
// scenario references a zone missing from the catalog.
func (s *Studio) Simulate(ctx context.Context, d *design.State, scenarioName string) (*assess.SimulationResult, error) {
	if d == nil {
		return nil, &Error{Op: "Studio.Simulate", Kind: KindValidation, Err: ErrNilDesign}
	}

	scenario, ok := s.catalog.AttackScenario(scenarioName)
	if !ok {
		return nil, &Error{
			Op:   "Studio.Simulate",
			Kind: KindNotFound,
			Err:  ErrScenarioNotFound,
			Context: map[string]any{
				"scenario": scenarioName,
			},
		}
	}

	result, err := assess.Simulate(d, s.catalog, scenario)
	if err != nil {
		var unknownRef *assess.UnknownReferenceError
		if errors.As(err, &unknownRef) {
			return nil, &Error{Op: "Studio.Simulate", Kind: KindUnknownReference, Err: err}
		}
		return nil, &Error{Op: "Studio.Simulate", Kind: KindInternal, Err: err}
	}

	blocked := 0
	for _, st := range result.Stages {
		if st.Blocked {
			blocked++
		}
	}
	s.recordSimulation(ctx, scenario.Name, result.ProtectionPct, blocked, len(result.Stages))
	s.logger.InfoContext(ctx, "attack simulated",
		slog.String("scenario", scenario.Name),
		slog.Int("protection_pct", result.ProtectionPct),
		slog.Int("blocked_stages", blocked),
		slog.Int("total_stages", len(result.Stages)),
	)

	return result, nil
}

// CheckFlow applies the trust-jump policy to a prospective flow between two
// zones: jumps of more than one trust level get a warning recommending an
// intermediate proxy or gateway and mandatory logging.
func (s *Studio) CheckFlow(source, destination string) FlowCheck {
	jump, exceeded := assess.CheckTrustJump(source, destination, s.catalog)
	check := FlowCheck{Jump: jump, Warn: exceeded}
	if exceeded {
		check.Recommendation = fmt.Sprintf(
			"HIGH TRUST JUMP (%d levels). Skipping intermediate zone(s). "+
				"Ensure a proxy/gateway sits between these zones and this flow has "+
				"explicit logging and MFA-backed authorisation.", jump)
	}
	return check
}

// Export evaluates a design and serializes the full report in the given
// format. The design's Scenario field selects the engagement brief included
// in the report when it matches a known brief.
func (s *Studio) Export(ctx context.Context, d *design.State, format export.Format) ([]byte, error) {
	if d == nil {
		return nil, &Error{Op: "Studio.Export", Kind: KindValidation, Err: ErrNilDesign}
	}
	if !format.IsValid() {
		return nil, &Error{
			Op:   "Studio.Export",
			Kind: KindValidation,
			Err:  fmt.Errorf("invalid export format %q", format),
		}
	}

	report, err := export.Build(d, s.catalog)
	if err != nil {
		var unknownRef *assess.UnknownReferenceError
		if errors.As(err, &unknownRef) {
			return nil, &Error{Op: "Studio.Export", Kind: KindUnknownReference, Err: err}
		}
		return nil, &Error{Op: "Studio.Export", Kind: KindInternal, Err: err}
	}
	if brief, err := s.Brief(d.Scenario); err == nil {
		report.Brief = &brief
	}

	switch format {
	case FormatJSON:
		data, err := report.JSON()
		if err != nil {
			return nil, &Error{Op: "Studio.Export", Kind: KindInternal, Err: err}
		}
		return data, nil
	default:
		return []byte(export.Markdown(report, s.catalog)), nil
	}
}

// StartSession creates a new session seeded with the default design and
// returns its ID.
func (s *Studio) StartSession(ctx context.Context) (string, error) {
	id := session.NewID()
	if err := s.sessions.Put(ctx, id, design.Default()); err != nil {
		return "", &Error{Op: "Studio.StartSession", Kind: KindStorage, Err: err}
	}
	s.logger.InfoContext(ctx, "session started", slog.String("session_id", id))
	return id, nil
}

// LoadSession returns the design stored for a session.
func (s *Studio) LoadSession(ctx context.Context, id string) (*design.State, error) {
	d, err := s.sessions.Get(ctx, id)
	if err != nil {
		kind := KindStorage
		if errors.Is(err, session.ErrNotFound) {
			kind = KindNotFound
		}
		return nil, &Error{Op: "Studio.LoadSession", Kind: kind, Err: err}
	}
	return d, nil
}

// SaveSession stores a design under a session ID.
func (s *Studio) SaveSession(ctx context.Context, id string, d *design.State) error {
	if d == nil {
		return &Error{Op: "Studio.SaveSession", Kind: KindValidation, Err: ErrNilDesign}
	}
	if err := s.sessions.Put(ctx, id, d); err != nil {
		kind := KindStorage
		if errors.Is(err, session.ErrInvalidID) || errors.Is(err, session.ErrNilState) {
			kind = KindValidation
		}
		return &Error{Op: "Studio.SaveSession", Kind: kind, Err: err}
	}
	return nil
}

// EndSession discards a session's design.
func (s *Studio) EndSession(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		kind := KindStorage
		if errors.Is(err, session.ErrNotFound) {
			kind = KindNotFound
		}
		return &Error{Op: "Studio.EndSession", Kind: kind, Err: err}
	}
	s.logger.InfoContext(ctx, "session ended", slog.String("session_id", id))
	return nil
}

// Export format aliases so common callers need not import the export
// package.
const (
	// FormatJSON exports a report as indented JSON.
	FormatJSON = export.FormatJSON

	// FormatMarkdown exports a report as a Markdown design document.
	FormatMarkdown = export.FormatMarkdown
)
