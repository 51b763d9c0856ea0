// Package classify labels the inner tiles of a 2-patch and checks the
// labels against the neighbourhood grammar of the hat's cluster
// decomposition: H1..H4 make up an H cluster, T1 is a lone T, and P2, F2
// and FP1 pair up into P and F clusters.
package classify

import (
	"fmt"
	"slices"

	"hat-surround/internal/geom"
	"hat-surround/internal/patchio"
)

// Label names the role a tile plays in the cluster decomposition.
type Label string

const (
	H1  Label = "H1"
	H2  Label = "H2"
	H3  Label = "H3"
	H4  Label = "H4"
	T1  Label = "T1"
	P2  Label = "P2"
	F2  Label = "F2"
	FP1 Label = "FP1"
)

func tf(a, b, c, d, e, f int) geom.Transform {
	return geom.Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

// labelRule assigns label when every relative transform in needs is present.
type labelRule struct {
	label Label
	needs []geom.Transform
}

// Rules are tried in order; a tile matching none is FP1.
var labelRules = []labelRule{
	{H1, []geom.Transform{tf(1, 1, 2, 0, -1, 2)}},
	{H2, []geom.Transform{tf(0, -1, 4, -1, 0, -2), tf(0, -1, 8, 1, 1, -4)}},
	{H3, []geom.Transform{tf(0, -1, -2, -1, 0, 4)}},
	{H4, []geom.Transform{tf(1, 1, -4, 0, -1, 2)}},
	{T1, []geom.Transform{tf(0, -1, 2, 1, 1, 2), tf(1, 1, 6, -1, 0, 0)}},
	{P2, []geom.Transform{tf(-1, 0, 2, 0, -1, -4), tf(1, 1, 4, -1, 0, -2)}},
	{F2, []geom.Transform{tf(-1, -1, 8, 1, 0, -4), tf(0, 1, 4, -1, -1, 4)}},
}

// LabelOf returns the label of the tile at T in rec.
func LabelOf(T geom.Transform, rec patchio.Record) Label {
	for _, r := range labelRules {
		all := true
		for _, n := range r.needs {
			if _, ok := rec[T.Multiply(n)]; !ok {
				all = false
				break
			}
		}
		if all {
			return r.label
		}
	}
	return FP1
}

// Labels labels every tile of rec in the kernel or first corona.
func Labels(rec patchio.Record) map[geom.Transform]Label {
	ret := make(map[geom.Transform]Label)
	for T, level := range rec {
		if level < 2 {
			ret[T] = LabelOf(T, rec)
		}
	}
	return ret
}

// Result is the outcome of Check.
type Result struct {
	Passed bool
	// Reason names the first failed check.
	Reason string
	// Centre is the label of the identity tile.
	Centre Label
}

// alt is one way an edge of the central tile can be matched: a tile at T
// carrying one of the allowed labels.
type alt struct {
	T       geom.Transform
	allowed []Label
}

// edgeRule applies when the central tile has one of the centres labels.
// The first alternative placed in the patch decides the outcome; if none is
// placed the rule fails.
type edgeRule struct {
	name    string
	centres []Label
	alts    []alt
}

func (r edgeRule) check(rec patchio.Record, labels map[geom.Transform]Label) (bool, string) {
	for i, a := range r.alts {
		if _, ok := rec[a.T]; !ok {
			continue
		}
		l, ok := labels[a.T]
		if !ok {
			return false, fmt.Sprintf("%s: neighbour at %v is outside the labelled corona", r.name, a.T)
		}
		if !slices.Contains(a.allowed, l) {
			if len(r.alts) > 1 {
				return false, fmt.Sprintf("%s (alt. %d): neighbour labelled %s", r.name, i+1, l)
			}
			return false, fmt.Sprintf("%s: neighbour labelled %s", r.name, l)
		}
		return true, ""
	}
	return false, fmt.Sprintf("%s: no neighbour", r.name)
}

func one(name string, centre Label, T geom.Transform, allowed ...Label) edgeRule {
	return edgeRule{name: name, centres: []Label{centre}, alts: []alt{{T, allowed}}}
}

// Matching checks inside a cluster.
var withinCluster = []edgeRule{
	one("H1 adjacent H2", H1, tf(0, -1, -2, -1, 0, 4), H2),
	one("H1 adjacent H3", H1, tf(0, -1, 4, -1, 0, -2), H3),
	one("H1 adjacent H4", H1, tf(1, 1, 2, 0, -1, 2), H4),
	one("H2 adjacent H1", H2, tf(0, -1, 4, -1, 0, -2), H1),
	one("H3 adjacent H1", H3, tf(0, -1, -2, -1, 0, 4), H1),
	one("H4 adjacent H1", H4, tf(1, 1, -4, 0, -1, 2), H1),
	one("FP1 adjacent P2 or F2", FP1, tf(0, -1, 2, 1, 1, 2), P2, F2),
	{
		name:    "P2 or F2 adjacent FP1",
		centres: []Label{P2, F2},
		alts:    []alt{{tf(1, 1, -4, -1, 0, 2), []Label{FP1}}},
	},
}

// Matching checks across cluster boundaries.
var betweenCluster = []edgeRule{
	{
		name:    "H edge A+",
		centres: []Label{H2},
		alts: []alt{
			{tf(0, -1, -2, 1, 1, -2), []Label{T1, P2}},
			{tf(1, 1, -4, -1, 0, 2), []Label{T1}},
		},
	},
	one("H upper edge B-", H1, tf(-1, -1, 2, 0, 1, -4), T1, FP1),
	one("H lower edge B-", H3, tf(1, 1, -2, -1, 0, -2), T1, FP1),
	one("T upper edge A-", T1, tf(0, -1, 2, 1, 1, 2), H2),
	{
		name:    "T or P lower edge A-",
		centres: []Label{T1, P2},
		alts:    []alt{{tf(1, 1, 4, -1, 0, -2), []Label{H2}}},
	},
	{
		name:    "T, P or F edge B+",
		centres: []Label{T1, FP1},
		alts:    []alt{{tf(1, 1, -4, -1, 0, 2), []Label{H3, H4}}},
	},
	one("F edge F+", F2, tf(-1, -1, 8, 1, 0, -4), F2),
	one("F edge F-", F2, tf(0, 1, 4, -1, -1, 4), F2),
	{
		name:    "X+ top edge",
		centres: []Label{H2, P2, F2},
		alts: []alt{
			{tf(0, 1, 0, -1, -1, 6), []Label{H2, P2}},
			{tf(1, 0, -2, 0, 1, 4), []Label{H3, H4, FP1, F2}},
		},
	},
	{
		name:    "X+ right edge",
		centres: []Label{H3, H4, FP1},
		alts: []alt{
			{tf(-1, -1, 8, 1, 0, -4), []Label{H2, P2}},
			{tf(0, 1, 6, -1, -1, 0), []Label{H3, H4, FP1, F2}},
		},
	},
	{
		name:    "X- right edge",
		centres: []Label{H2, P2},
		alts: []alt{
			{tf(-1, -1, 6, 1, 0, 0), []Label{H2, F2, P2}},
			{tf(0, 1, 4, -1, -1, 4), []Label{H3, H4, FP1}},
		},
	},
	{
		name:    "X- bottom edge",
		centres: []Label{H3, H4, FP1, F2},
		alts: []alt{
			{tf(1, 0, 2, 0, 1, -4), []Label{H2, F2, P2}},
			{tf(-1, -1, 6, 1, 0, -6), []Label{H3, H4, FP1}},
		},
	},
	{
		name:    "L edge at right",
		centres: []Label{P2},
		alts: []alt{
			{tf(-1, 0, 10, 0, -1, -2), []Label{P2}},
			{tf(1, 1, 6, -1, 0, 0), []Label{FP1, F2}},
		},
	},
	{
		name:    "L edge at bottom",
		centres: []Label{FP1, F2},
		alts: []alt{
			{tf(0, -1, 0, 1, 1, -6), []Label{P2}},
			{tf(-1, 0, 2, 0, -1, -4), []Label{FP1, F2}},
		},
	},
}

func applyRules(rules []edgeRule, centre Label, rec patchio.Record, labels map[geom.Transform]Label) (bool, string) {
	for _, r := range rules {
		if !slices.Contains(r.centres, centre) {
			continue
		}
		if ok, reason := r.check(rec, labels); !ok {
			return false, reason
		}
	}
	return true, ""
}

// Check labels rec and runs the within-cluster checks, then the
// between-cluster checks, for its central tile.
func Check(rec patchio.Record) Result {
	labels := Labels(rec)
	centre, ok := labels[geom.Identity()]
	if !ok {
		return Result{Reason: "patch has no central tile"}
	}
	if ok, reason := applyRules(withinCluster, centre, rec, labels); !ok {
		return Result{Centre: centre, Reason: "within cluster: " + reason}
	}
	if ok, reason := applyRules(betweenCluster, centre, rec, labels); !ok {
		return Result{Centre: centre, Reason: "between clusters: " + reason}
	}
	return Result{Passed: true, Centre: centre}
}

// Summary counts the outcome of checking a batch of records.
type Summary struct {
	Passed, Total int
	Failures      []Result
}

// CheckAll checks every record.
func CheckAll(recs []patchio.Record) Summary {
	var s Summary
	for _, rec := range recs {
		s.Total++
		r := Check(rec)
		if r.Passed {
			s.Passed++
		} else {
			s.Failures = append(s.Failures, r)
		}
	}
	return s
}
