package surround

import (
	"fmt"

	"hat-surround/internal/geom"
	"hat-surround/internal/patchmap"
)

// SurveyResult counts the 2-patches examined by Survey.
type SurveyResult struct {
	Examined     int
	Surroundable int
}

// SurveyConfig configures Survey.
type SurveyConfig struct {
	// ProgressEvery is how many 2-patches pass between Progress calls.
	// Zero disables progress reports.
	ProgressEvery int
	// Progress is called with the running counts.
	Progress func(SurveyResult)
	// Surroundable is called for every 2-patch that admits a 3-patch. A
	// non-nil error stops the survey.
	Surroundable func(Patch) error
	// Options apply to every search the survey runs.
	Options []Option
}

// Survey enumerates every 2-patch around the identity hat and counts those
// that can be surrounded once more. m supplies the universe and must have
// nothing occupied; it is cloned and left untouched.
//
// The existence probe for a 3-patch stops at the first surround found, and
// runs on a disposable clone of the map.
func Survey(m *patchmap.Map, cfg SurveyConfig) (SurveyResult, error) {
	var res SurveyResult
	if n := m.OccupiedCount(); n != 0 {
		return res, fmt.Errorf("surround: survey needs an empty map, %d cells occupied", n)
	}

	pm := m.Clone()
	if err := pm.Occupy(geom.Identity()); err != nil {
		return res, err
	}

	for one, err := range Surrounds(pm, Seed(), cfg.Options...) {
		if err != nil {
			return res, err
		}
		for two, err := range Surrounds(pm, one, cfg.Options...) {
			if err != nil {
				return res, err
			}
			res.Examined++
			if cfg.ProgressEvery > 0 && res.Examined%cfg.ProgressEvery == 0 && cfg.Progress != nil {
				cfg.Progress(res)
			}

			ok, err := Extends(pm.Clone(), two, cfg.Options...)
			if err != nil {
				return res, err
			}
			if !ok {
				continue
			}
			res.Surroundable++
			if cfg.Surroundable != nil {
				if err := cfg.Surroundable(two); err != nil {
					return res, err
				}
			}
		}
	}
	return res, nil
}

// Extends reports whether patch, already placed in m, admits at least one
// more corona. It stops at the first surround.
func Extends(m *patchmap.Map, patch Patch, opts ...Option) (bool, error) {
	for _, err := range Surrounds(m, patch, opts...) {
		if err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
