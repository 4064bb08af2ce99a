package room

import (
	"encoding/json"
	"fmt"

	"github.com/wfunc/coloretto/coloretto"
)

// Status is the room lifecycle phase. A waiting room carries no game; a
// playing room carries the full engine state inline. The transition is
// one-way.
type Status struct {
	Playing *coloretto.Coloretto
}

func (s Status) Waiting() bool {
	return s.Playing == nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	if s.Playing == nil {
		return json.Marshal("waiting")
	}
	return json.Marshal(map[string]*coloretto.Coloretto{"playing": s.Playing})
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "waiting" {
			return fmt.Errorf("unknown room status: %q", tag)
		}
		s.Playing = nil
		return nil
	}

	var tagged struct {
		Playing *coloretto.Coloretto `json:"playing"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if tagged.Playing == nil {
		return fmt.Errorf("malformed room status: %s", data)
	}
	s.Playing = tagged.Playing
	return nil
}
