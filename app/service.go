package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/dayplanner/config"
	"github.com/kilianp07/dayplanner/core/clock"
	"github.com/kilianp07/dayplanner/core/interval"
	coremetrics "github.com/kilianp07/dayplanner/core/metrics"
	"github.com/kilianp07/dayplanner/core/monitoring"
	"github.com/kilianp07/dayplanner/core/planner"
	"github.com/kilianp07/dayplanner/infra/logger"
	"github.com/kilianp07/dayplanner/infra/metrics"
	"github.com/kilianp07/dayplanner/pkg/export"
)

const usage = `commands:
  add START END [LABEL...]  add an event, times as H, HH, H:MM or HH:MM
  move I START              move event I, keeping its duration
  resize I MINUTES          change the duration of event I
  label I [TEXT...]         change the label of event I
  rm I                      remove event I
  get I                     show event I
  ls                        list the plan
  help                      show this help
  quit                      leave the shell`

// Service owns a planner seeded from the configuration and executes text
// commands against it.
type Service struct {
	Planner     *planner.Planner
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logg := logger.New("service")
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	p, err := planner.New(
		planner.WithCapacity(cfg.Planner.InitialCapacity),
		planner.WithLogger(logger.New("planner")),
		planner.WithMetrics(sink),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	for i, e := range cfg.Planner.Events {
		ev, err := e.Interval()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if err := p.AddEvent(ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	logg.Infof("planner %s ready with %d events", p.ID(), p.Size())
	return &Service{
		Planner:     p,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled(),
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Entries returns the current plan in export form.
func (s *Service) Entries() []export.Entry {
	return export.FromEvents(s.Planner.Events())
}

// Run reads commands from in, one per line, and writes their results to out.
// It returns when in is exhausted, a quit command is read or ctx is done.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if s.promEnabled {
		go func() {
			defer monitoring.Recover()
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			cmd := strings.TrimSpace(line)
			if cmd == "quit" || cmd == "exit" {
				return nil
			}
			res, err := s.Exec(cmd)
			if err != nil {
				res = "error: " + err.Error()
			}
			if res == "" {
				continue
			}
			if _, err := fmt.Fprintln(out, res); err != nil {
				return err
			}
		}
	}
}

// Exec runs a single command line. Edits the planner refuses yield
// "refused"; malformed commands yield an error.
func (s *Service) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name, args := fields[0], fields[1:]
	switch name {
	case "add":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: add START END [LABEL...]")
		}
		start, err := clock.Parse(args[0])
		if err != nil {
			return "", err
		}
		end, err := clock.Parse(args[1])
		if err != nil {
			return "", err
		}
		ev, err := interval.NewLabeled(start, end, strings.Join(args[2:], " "))
		if err != nil {
			return "", err
		}
		if err := s.Planner.AddEvent(ev); err != nil {
			monitoring.CaptureException(err, map[string]string{"planner": s.Planner.ID(), "op": "add"})
			return "", err
		}
		return s.Planner.String(), nil

	case "move":
		i, err := indexArg(name, args, 2)
		if err != nil {
			return "", err
		}
		at, err := clock.Parse(args[1])
		if err != nil {
			return "", err
		}
		return s.outcome(s.Planner.MoveEvent(i, at)), nil

	case "resize":
		i, err := indexArg(name, args, 2)
		if err != nil {
			return "", err
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("resize: minutes %q: %w", args[1], err)
		}
		return s.outcome(s.Planner.ChangeDuration(i, minutes)), nil

	case "label":
		i, err := indexArg(name, args, 1)
		if err != nil {
			return "", err
		}
		return s.outcome(s.Planner.ChangeDescription(i, strings.Join(args[1:], " "))), nil

	case "rm":
		i, err := indexArg(name, args, 1)
		if err != nil {
			return "", err
		}
		return s.outcome(s.Planner.RemoveEvent(i)), nil

	case "get":
		i, err := indexArg(name, args, 1)
		if err != nil {
			return "", err
		}
		ev, ok := s.Planner.GetEvent(i)
		if !ok {
			return "refused", nil
		}
		return ev.String(), nil

	case "ls":
		return s.Planner.String(), nil

	case "help":
		return usage, nil

	default:
		return "", fmt.Errorf("unknown command %q, try help", name)
	}
}

func (s *Service) outcome(ok bool) string {
	if !ok {
		return "refused"
	}
	return s.Planner.String()
}

// indexArg parses args[0] as an event index and checks that at least want
// arguments were given.
func indexArg(cmd string, args []string, want int) (int, error) {
	if len(args) < want {
		return 0, fmt.Errorf("%s: expected at least %d arguments, got %d", cmd, want, len(args))
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: index %q: %w", cmd, args[0], err)
	}
	return i, nil
}
