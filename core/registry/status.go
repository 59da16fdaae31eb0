package registry

import (
	"time"

	"pokemasdb/core/aggregate"

	"github.com/dustin/go-humanize"
)

// Status is a point-in-time view of the registry.
type Status struct {
	State      State                  `json:"state"`
	Generation uint64                 `json:"generation"`
	Source     string                 `json:"source"`
	BuiltAt    *time.Time             `json:"built_at,omitempty"`
	Sizes      map[aggregate.Kind]int `json:"sizes"`
	LastRun    *RunStatus             `json:"last_run,omitempty"`
}

// RunStatus describes the most recent build attempt.
type RunStatus struct {
	FinishedAt time.Time `json:"finished_at"`
	TookMillis int64     `json:"took_ms"`
	Bytes      int64     `json:"bytes"`
	Downloaded string    `json:"downloaded"`
	Trainers   int       `json:"trainers"`
	Error      string    `json:"error,omitempty"`
}

// Status reports the current state and the last build attempt.
func (r *Registry) Status() Status {
	ctl := r.control()
	st := Status{
		State:      ctl.state(),
		Generation: ctl.generation(),
		Source:     r.src.Name(),
		Sizes:      map[aggregate.Kind]int{},
	}
	if c, ok := r.Instance(); ok {
		builtAt := c.BuiltAt
		st.BuiltAt = &builtAt
		st.Sizes = c.Sizes()
	}
	if rep := r.last.Load(); rep != nil {
		st.LastRun = &RunStatus{
			FinishedAt: rep.finishedAt,
			TookMillis: rep.took.Milliseconds(),
			Bytes:      rep.bytes,
			Downloaded: humanize.Bytes(uint64(rep.bytes)),
			Trainers:   rep.trainers,
		}
		if rep.err != nil {
			st.LastRun.Error = rep.err.Error()
		}
	}
	return st
}
