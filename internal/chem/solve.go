package chem

import "math"

// Solve returns the solution pH for the given titration snapshot,
// clamped to [0, 14].
//
// Solve never fails: degenerate input (non-positive total volume,
// unknown titration type) yields neutral 7.00, and every other edge is
// absorbed by flooring or clamping. See the package comment for the
// numeric policy.
func Solve(s State) float64 {
	if s.totalVolumeL() <= 0 {
		return neutralPH
	}

	switch s.Type {
	case StrongBaseStrongAcid:
		return solveStrongStrong(s, false)
	case StrongAcidStrongBase:
		return solveStrongStrong(s, true)
	case StrongBaseWeakAcid:
		return solveStrongBaseWeakAcid(s)
	case StrongAcidWeakBase:
		return solveStrongAcidWeakBase(s)
	case WeakAcidWeakBase:
		return solveWeakWeak(s)
	case StrongBaseDiproticAcid:
		return solvePolyprotic(s, 2)
	case StrongBaseTriproticAcid:
		return solvePolyprotic(s, 3)
	default:
		return neutralPH
	}
}

// solveStrongStrong handles both strong/strong directions in closed
// form. Strong species dissociate completely, so the only chemistry is
// the mole difference; no equilibrium search is needed.
//
// acidTitrant flips the sign convention: when true the flask holds the
// strong base and delivered titrant consumes it.
func solveStrongStrong(s State, acidTitrant bool) float64 {
	vt := s.totalVolumeL()
	diff := s.analyteMoles() - s.titrantMoles()
	if math.Abs(diff) <= strongTol {
		return neutralPH
	}

	// freeAcid is positive when unneutralized strong acid remains.
	freeAcid := diff
	if acidTitrant {
		freeAcid = -diff
	}
	if freeAcid > 0 {
		return phFromH(freeAcid / vt)
	}
	return phFromOH(-freeAcid / vt)
}

// solveStrongBaseWeakAcid sweeps a weak acid analyte HA against a
// strong base titrant.
//
// Only the untouched flask gets a closed form. For any delivered base
// the charge balance [H+] + [Na+] = [A-] + [OH-] is solved exactly:
// at the equivalence point its root is the conjugate hydrolysis value,
// and far past it the [Na+] excess reduces it to the strong-base form,
// so one equation covers buffer, equivalence zone, and excess without
// a seam.
func solveStrongBaseWeakAcid(s State) float64 {
	vt := s.totalVolumeL()
	nHA := s.analyteMoles()
	nOH := s.titrantMoles()
	ka := pKtoK(s.PKa)

	if nHA <= epsMoles {
		// Nothing to titrate; the flask is just diluted base.
		if nOH/vt > tinyConc {
			return phFromOH(nOH / vt)
		}
		return neutralPH
	}

	if nOH <= 0 {
		h := posQuadRoot(1, ka, -ka*nHA/vt)
		return phFromH(h)
	}

	ca := nHA / vt
	cm := nOH / vt
	h := bisectLog(func(h float64) float64 {
		return h + cm - ca*ka/(ka+h) - Kw/h
	})
	return phFromH(h)
}

// solveStrongAcidWeakBase mirrors solveStrongBaseWeakAcid for a weak
// base analyte B against a strong acid titrant. The conjugate acid BH+
// carries Ka' = Kw/Kb, and the one charge balance
// [H+] + [BH+] = [OH-] + [X-] covers buffer, equivalence zone, and
// excess acid without a seam.
func solveStrongAcidWeakBase(s State) float64 {
	vt := s.totalVolumeL()
	nB := s.analyteMoles()
	nH := s.titrantMoles()
	kb := pKtoK(s.PKb)
	kaConj := Kw / kb

	if nB <= epsMoles {
		if nH/vt > tinyConc {
			return phFromH(nH / vt)
		}
		return neutralPH
	}

	if nH <= 0 {
		oh := posQuadRoot(1, kb, -kb*nB/vt)
		return phFromOH(oh)
	}

	cb := nB / vt
	cx := nH / vt
	h := bisectLog(func(h float64) float64 {
		return h + cb*h/(h+kaConj) - Kw/h - cx
	})
	return phFromH(h)
}

// solveWeakWeak sweeps a weak acid analyte HA against a weak base
// titrant B. Outside the equivalence band the full charge balance with
// both conjugate pairs is solved exactly, which covers the buffer and
// the excess-titrant regions with one equation. Inside the band the
// standard concentration-independent result 7 + (pKa - pKb)/2 applies.
func solveWeakWeak(s State) float64 {
	vt := s.totalVolumeL()
	nHA := s.analyteMoles()
	nB := s.titrantMoles()
	ka := pKtoK(s.PKa)
	kb := pKtoK(s.PKb)
	kaConj := Kw / kb

	if nHA <= epsMoles {
		if nB <= epsMoles {
			return neutralPH
		}
		oh := posQuadRoot(1, kb, -kb*nB/vt)
		return phFromOH(oh)
	}

	if nB <= 0 {
		h := posQuadRoot(1, ka, -ka*nHA/vt)
		return phFromH(h)
	}

	if math.Abs(nB-nHA) <= eqZone*nHA {
		return clampPH(neutralPH + 0.5*(s.PKa-s.PKb))
	}

	// Charge balance: [H+] + [BH+] = [OH-] + [A-].
	ca := nHA / vt
	cb := nB / vt
	h := bisectLog(func(h float64) float64 {
		return h + cb*h/(h+kaConj) - Kw/h - ca*ka/(ka+h)
	})
	return phFromH(h)
}

// solvePolyprotic sweeps an n-protic acid (n = 2 or 3) against a strong
// base titrant.
//
// Instead of per-region buffer formulas, the interior of the sweep is
// one search over the full charge balance
//
//	[H+] + [Na+] = [OH-] + sum of conjugate-base charges
//
// rewritten as h - Kw/h + c*(nOH/nA - alpha(h)) where alpha is the
// equilibrium average degree of deprotonation. The stoichiometric ratio
// nOH/nA is exactly [Na+]/c, so the same equation covers the buffers,
// every equivalence zone, and the excess-base tail without a seam.
func solvePolyprotic(s State, n int) float64 {
	vt := s.totalVolumeL()
	nA := s.analyteMoles()
	nOH := s.titrantMoles()

	ks := cascade(s, n)

	if nA <= epsMoles {
		if nOH/vt > tinyConc {
			return phFromOH(nOH / vt)
		}
		return neutralPH
	}

	if nOH <= 0 {
		// Pure polyprotic acid: the first dissociation dominates.
		h := posQuadRoot(1, ks[0], -ks[0]*nA/vt)
		return phFromH(h)
	}

	target := nOH / nA
	c := nA / vt
	h := bisectLog(func(h float64) float64 {
		return h - Kw/h + c*(target-alpha(h, ks, n))
	})
	return phFromH(h)
}

// cascade returns the sequential dissociation constants Ka1..Kan.
func cascade(s State, n int) []float64 {
	ks := []float64{pKtoK(s.PKa), pKtoK(s.PKa2), pKtoK(s.PKa3)}
	return ks[:n]
}

// alpha returns the equilibrium average degree of deprotonation of an
// n-protic acid at a given [H+]: the mole-fraction-weighted mean charge
// of the dissociation cascade. It decreases monotonically in [H+] from
// n (fully deprotonated) to 0.
func alpha(h float64, ks []float64, n int) float64 {
	// Terms h^n, Ka1*h^(n-1), Ka1*Ka2*h^(n-2), ...
	num, den := 0.0, 0.0
	term := math.Pow(h, float64(n))
	den = term
	for i := 1; i <= n; i++ {
		term = term / h * ks[i-1]
		den += term
		num += float64(i) * term
	}
	return num / den
}
