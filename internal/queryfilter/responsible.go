package queryfilter

import (
	"strconv"

	"epicevents/pkg/apperrors"
)

// ParseResponsibleFlag decodes the `responsible` query parameter.
// Absent means no filtering. A present value must decode to 0 or 1; both
// values apply the role-based restriction. The two values are deliberately
// not distinguished: the flag is a binary "restrict to mine" toggle and
// callers must not invent asymmetric semantics for 0 versus 1.
func ParseResponsibleFlag(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || (value != 0 && value != 1) {
		return false, apperrors.NewInvalidQueryParamError("'responsible' must be 0 or 1")
	}
	return true, nil
}
