package constants

// Scheme is a centrally sponsored scheme a claimant may be eligible for.
type Scheme string

const (
	SchemePMKisan   Scheme = "PM-KISAN"
	SchemeJalJeevan Scheme = "Jal Jeevan Mission"
	SchemeMGNREGA   Scheme = "MGNREGA"
	SchemeDAJGUA    Scheme = "DAJGUA"
)

var allSchemes = []Scheme{
	SchemePMKisan,
	SchemeJalJeevan,
	SchemeMGNREGA,
	SchemeDAJGUA,
}

func AllSchemes() []Scheme {
	out := make([]Scheme, len(allSchemes))
	copy(out, allSchemes)
	return out
}
