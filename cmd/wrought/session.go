package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wrought/internal/observ"
	"wrought/internal/prof"
	"wrought/internal/trace"
)

// session owns everything a command run starts and must stop: tracer,
// heartbeat, profiler and phase timer.
type session struct {
	tracer    trace.Tracer
	heartbeat *trace.Heartbeat
	profile   *prof.Session
	timer     *observ.Timer
	timings   bool
	started   bool
}

type sessionKey struct{}

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) *session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(sessionKey{}).(*session)
	return s
}

func (s *session) start(cmd *cobra.Command) error {
	if s.started {
		return nil
	}
	s.started = true

	tr, hb, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	s.tracer, s.heartbeat = tr, hb
	cmd.SetContext(trace.WithTracer(cmd.Context(), tr))

	s.profile, err = setupProfiling(cmd)
	if err != nil {
		return err
	}

	s.timings, err = cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.timings {
		s.timer = observ.NewTimer()
	}
	return nil
}

// finish stops profiling and tracing. On failure the trace ring, if any,
// is dumped to errOut.
func (s *session) finish(errOut io.Writer, failed bool) {
	if s == nil || !s.started {
		return
	}
	if err := s.profile.Stop(); err != nil {
		fmt.Fprintf(errOut, "profile: %v\n", err)
	}
	if s.timings && s.timer != nil {
		fmt.Fprint(errOut, s.timer.Summary())
	}
	s.heartbeat.Stop()
	if s.tracer == nil {
		return
	}
	if failed {
		if ring := trace.RingOf(s.tracer); ring != nil {
			fmt.Fprintln(errOut, "trace: last events")
			if err := ring.Dump(errOut, trace.FormatText); err != nil {
				fmt.Fprintf(errOut, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := s.tracer.Flush(); err != nil {
		fmt.Fprintf(errOut, "trace: flush error: %v\n", err)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(errOut, "trace: close error: %v\n", err)
	}
}
