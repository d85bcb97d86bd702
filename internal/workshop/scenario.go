package workshop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"

	"github.com/KasperOmsK/compose"
	"github.com/KasperOmsK/compose/internal/iterx"
	"github.com/KasperOmsK/compose/internal/logger"
)

// ErrUnknownScenario is returned by Run for a scenario name it does not know.
var ErrUnknownScenario = errors.New("unknown scenario")

var scenarioOrder = []string{"apply", "map", "filter", "mapfilter", "lazy", "pair", "user"}

var scenarios = map[string]func(*Runner) string{
	"apply":     (*Runner).apply,
	"map":       (*Runner).mapInts,
	"filter":    (*Runner).filterEven,
	"mapfilter": (*Runner).mapThenFilter,
	"lazy":      (*Runner).lazyMapThenFilter,
	"pair":      (*Runner).nestedPair,
	"user":      (*Runner).user,
}

// Names returns the scenario names in the order Run executes them.
func Names() []string {
	out := make([]string, len(scenarioOrder))
	copy(out, scenarioOrder)
	return out
}

// Runner executes demo scenarios against a Config.
type Runner struct {
	cfg Config
	tag language.Tag
	log *logger.Logger
}

// NewRunner builds a Runner. log may be nil.
func NewRunner(cfg Config, log *logger.Logger) (*Runner, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", cfg.Locale, err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		cfg: cfg,
		tag: tag,
		log: log.WithComponent("workshop"),
	}, nil
}

// Run executes the named scenarios in order, writing one "name: result"
// line per scenario to w. An empty names list runs every scenario.
//
// All names are checked before anything runs.
func (r *Runner) Run(ctx context.Context, names []string, w io.Writer) error {
	if len(names) == 0 {
		names = scenarioOrder
	}
	for _, name := range names {
		if _, ok := scenarios[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		scoped := r.forScenario(name)
		scoped.log.Debug("scenario start")
		result := scenarios[name](scoped)
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, result); err != nil {
			return fmt.Errorf("write %s result: %w", name, err)
		}
		scoped.log.Info("scenario done")
	}
	return nil
}

func (r *Runner) forScenario(name string) *Runner {
	scoped := *r
	scoped.log = r.log.With(logger.FieldScenario, name)
	return &scoped
}

// trace returns a passthrough stage that logs every value it sees.
func trace[T any](log *logger.Logger, stage string) func(T) T {
	return compose.Tap(func(v T) {
		log.Stage(stage, v)
	})
}

func (r *Runner) incrementThenSquare() func(int) int {
	return compose.Chain(Increment, trace[int](r.log, "increment"), Square)
}

func (r *Runner) apply() string {
	return strconv.Itoa(compose.Pipe(r.cfg.Value, r.incrementThenSquare()))
}

func (r *Runner) mapInts() string {
	mapInts := compose.MapLift(r.incrementThenSquare())
	return fmt.Sprint(compose.Pipe(r.cfg.Numbers, mapInts))
}

func (r *Runner) filterEven() string {
	filterEven := compose.FilterLift(IsEven)
	return fmt.Sprint(compose.Pipe(r.cfg.Numbers, filterEven))
}

func (r *Runner) mapThenFilter() string {
	pipeline := compose.ComposeForward(
		compose.ComposeForward(compose.MapLift(r.incrementThenSquare()), trace[[]int](r.log, "mapped")),
		compose.FilterLift(IsEven),
	)
	return fmt.Sprint(compose.Pipe(r.cfg.Numbers, pipeline))
}

// lazyMapThenFilter pulls values one at a time, so with a Limit set the
// numbers past the last kept result are never mapped.
func (r *Runner) lazyMapThenFilter() string {
	seq := compose.Pipe2(
		iterx.FromSlice(r.cfg.Numbers),
		compose.MapSeq(r.incrementThenSquare()),
		compose.FilterSeq(IsEven),
	)
	if r.cfg.Limit > 0 {
		seq = iterx.Take(seq, r.cfg.Limit)
	}
	return fmt.Sprint(iterx.Collect(seq))
}

func (r *Runner) nestedPair() string {
	nested := compose.NewPair(r.cfg.Greet, compose.NewPair(42, "World"))

	// Lift a field function first into the inner pair, then into the outer
	// one, by composing the generators themselves.
	lift := compose.ComposeBackward(
		compose.MapSecond[compose.Pair[int, string], compose.Pair[int, string], string],
		compose.MapFirst[int, int, string],
	)
	out := compose.Pipe(nested, lift(Increment))

	inner := out.Second()
	return fmt.Sprintf("(%s, (%d, %s))", out.First(), inner.First(), inner.Second())
}

func (r *Runner) user() string {
	u := User{
		Name:     r.cfg.User.Name,
		Location: r.cfg.User.Location,
		Age:      r.cfg.User.Age,
	}
	if r.cfg.User.Rename != "" {
		u = UserName.Set(u, r.cfg.User.Rename)
	}
	r.log.Stage("user", u)

	ageIncrementer := compose.Transformer(UserAge)(Increment)
	nameScreamer := compose.Transformer(UserName)(Upper(r.tag))

	out := compose.ComposeBackward(nameScreamer, ageIncrementer)(u)
	return fmt.Sprintf("name=%s location=%s age=%d", out.Name, out.Location, out.Age)
}
