package sweep

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/halfeq/burette/internal/chem"
)

// DomainRun is the domain prefix for run identity hashing. The version
// suffix allows the hash layout to change without colliding with
// records written under the old one.
const DomainRun = "burette/run/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data). The null byte
// prevents ambiguity between domain and payload bytes.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ParamHash computes the content-addressed identity of a sweep: the
// hash of the run name, the titration parameters, and the step size.
// The run token is deliberately excluded - the hash identifies what was
// swept, not which recording of it.
func ParamHash(name string, s chem.State, stepML float64) (string, error) {
	canonical, err := MarshalCanonical(paramsMap(name, s, stepML))
	if err != nil {
		return "", fmt.Errorf("param hash: %w", err)
	}
	return hashWithDomain(DomainRun, canonical), nil
}

// paramsMap flattens the hashed parameters. TitrantVol is omitted: a
// sweep always starts at zero and the cursor position is not identity.
func paramsMap(name string, s chem.State, stepML float64) map[string]any {
	m := map[string]any{
		"name":         name,
		"type":         string(s.Type),
		"analyte_conc": s.AnalyteConc,
		"analyte_vol":  s.AnalyteVol,
		"titrant_conc": s.TitrantConc,
		"titrant_max":  s.TitrantMax,
		"step_ml":      stepML,
	}
	if s.PKa != 0 {
		m["p_ka"] = s.PKa
	}
	if s.PKb != 0 {
		m["p_kb"] = s.PKb
	}
	if s.PKa2 != 0 {
		m["p_ka2"] = s.PKa2
	}
	if s.PKa3 != 0 {
		m["p_ka3"] = s.PKa3
	}
	return m
}
