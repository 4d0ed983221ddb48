package phase

// Result is the per-frame output of phase detection. When progress lies
// outside every transition zone, Next equals Current and Blend is 0.
type Result struct {
	// Current is the phase whose interval contains progress.
	Current Phase

	// Next is the phase being blended toward. Inside the forward half of a
	// transition zone this is the successor phase; everywhere else (including
	// the backward half, where the current phase is itself the blend target)
	// it equals Current.
	Next Phase

	// Blend is the cross-phase transition factor in [0, 1]: 0 outside any
	// transition zone, rising to 1 at the exact phase boundary.
	Blend float64

	// PhaseProgress is progress renormalized to [0, 1] within Current.
	PhaseProgress float64

	// NextPhaseProgress is progress renormalized within Next and clamped to
	// [0, 1]. During a forward transition the global progress still lies
	// before Next's interval, so this reads 0 until the boundary is crossed.
	NextPhaseProgress float64
}

// InTransition reports whether progress lies inside a transition zone.
func (r Result) InTransition() bool {
	return r.Blend > 0
}

// Detect determines the current phase for the given global progress, whether
// progress lies within a cross-phase transition zone, the blend factor, and
// the per-phase normalized progress values.
//
// Callers must clamp progress to [0, 1] beforehand; this is a precondition,
// not a checked contract (see timing.Progress).
//
// Within width w of an internal boundary the blend factor is:
//
//	approaching the boundary:  1 - distToBoundary/w  (rises 0 → 1)
//	just past the boundary:    1 - distFromBoundary/w  (falls 1 → 0)
//
// When both checks apply (phases shorter than 2w after clamping), the larger
// magnitude wins. That rule can produce a discontinuous derivative exactly
// where dominance swaps; this matches the reference behavior and is kept
// deliberately rather than smoothed over.
func (tl *Timeline) Detect(progress float64) Result {
	idx := tl.indexAt(progress)
	cur := tl.phases[idx]

	res := Result{
		Current:       cur,
		Next:          cur,
		PhaseProgress: normalize(progress, cur),
	}

	w := tl.width
	if w <= 0 {
		return res
	}

	// Forward check: approaching the boundary into the successor phase.
	if idx+1 < len(tl.phases) {
		if dist := cur.End - progress; dist >= 0 && dist <= w {
			res.Next = tl.phases[idx+1]
			res.Blend = 1 - dist/w
			res.NextPhaseProgress = clamp01(normalize(progress, res.Next))
		}
	}

	// Backward check: just crossed a boundary out of the predecessor. The
	// current phase is the blend target of that crossing, so Next stays as
	// Current; only the exposed blend factor is affected.
	if idx > 0 {
		if dist := progress - tl.phases[idx-1].End; dist >= 0 && dist <= w {
			if b := 1 - dist/w; b > res.Blend {
				res.Blend = b
			}
		}
	}

	return res
}

// normalize maps progress into phase-local [0, 1]. Degenerate (zero-width)
// phases report 0.
func normalize(progress float64, p Phase) float64 {
	den := p.End - p.Start
	if den <= 0 {
		return 0
	}
	return (progress - p.Start) / den
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
