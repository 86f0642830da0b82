package profiler

type document struct {
	Schema             string    `json:"$schema"`
	Shared             shared    `json:"shared"`
	Profiles           []profile `json:"profiles"`
	ActiveProfileIndex int       `json:"activeProfileIndex"`
	Exporter           string    `json:"exporter,omitempty"`
	Name               string    `json:"name,omitempty"`
}

type shared struct {
	Frames []frame `json:"frames"`
}

type frame struct {
	Name string `json:"name"`
}

type profile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

// buildDocument turns raw ring events into a balanced evented profile.
// Closes without a matching open (their open was overwritten by the ring) are
// dropped, and scopes still open at the end are closed at the last timestamp.
func buildDocument(evs []event, names []string) (document, error) {
	if len(evs) == 0 {
		return document{}, ErrNoEvents
	}

	base := evs[0].at
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 32)
	var last, end int64

	for _, e := range evs {
		at := (e.at - base) / 1000
		if at < last {
			at = last
		}
		if e.open {
			stack = append(stack, e.frame)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
		if at > end {
			end = at
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return document{}, ErrNoEvents
	}

	frames := make([]frame, len(names))
	for i, n := range names {
		frames[i] = frame{Name: n}
	}
	return document{
		Schema: schemaURL,
		Shared: shared{Frames: frames},
		Profiles: []profile{{
			Type:     "evented",
			Name:     "canopy frames",
			Unit:     "microseconds",
			EndValue: end,
			Events:   out,
		}},
		Exporter: "canopy-profiler",
		Name:     "canopy capture",
	}, nil
}
