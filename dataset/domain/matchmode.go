package dataset

// MatchKind enumerates the supported strategies for comparing a query value
// against a record field.
type MatchKind int

const (
	MatchEquals MatchKind = iota
	MatchPrefix
	MatchSuffix
	MatchSubstring
	MatchOperator
)

// MatchMode is the resolved matching strategy of a filtered list request.
// Operator is set only for MatchOperator and holds a firestore comparison
// operator taken from the allow-list.
type MatchMode struct {
	Kind     MatchKind
	Operator string
}

// comparisonOperators is the allow-list of caller-supplied comparison tokens.
// Anything else is rejected before it can reach a store filter.
var comparisonOperators = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
	"ne":  "!=",
}

// ParseMatchMode resolves the "match" query parameter into a MatchMode.
// An empty token means exact equality.
func ParseMatchMode(token string) (MatchMode, error) {
	switch token {
	case "":
		return MatchMode{Kind: MatchEquals}, nil
	case "startswith":
		return MatchMode{Kind: MatchPrefix}, nil
	case "endswith":
		return MatchMode{Kind: MatchSuffix}, nil
	case "includes":
		return MatchMode{Kind: MatchSubstring}, nil
	}

	if op, ok := comparisonOperators[token]; ok {
		return MatchMode{Kind: MatchOperator, Operator: op}, nil
	}

	return MatchMode{}, ErrUnsupportedMatchMode(token)
}
