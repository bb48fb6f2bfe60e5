package pred

// Kind enumerates the 16 predicate kinds named in spec §4.7. Two of them
// (NCollKind, NEqKind) act as guards during DD matching rather than
// ordinary positive facts (see the IsGuard checks in the dd package).
type Kind int

const (
	CollKind Kind = iota
	CyclicKind
	ParaKind
	PerpKind
	CongKind
	EqAngleKind
	EqRatioKind
	ContriKind
	SimTriKind
	MidpKind
	ConstAngleKind
	ConstRatioKind
	NEqKind
	NCollKind
	SameSideKind
	ConvexKind
)

var kindNames = [...]string{
	CollKind:       "coll",
	CyclicKind:     "cyclic",
	ParaKind:       "para",
	PerpKind:       "perp",
	CongKind:       "cong",
	EqAngleKind:    "eqangle",
	EqRatioKind:    "eqratio",
	ContriKind:     "contri",
	SimTriKind:     "simtri",
	MidpKind:       "midp",
	ConstAngleKind: "constangle",
	ConstRatioKind: "constratio",
	NEqKind:        "neq",
	NCollKind:      "ncoll",
	SameSideKind:   "sameside",
	ConvexKind:     "convex",
}

// String renders k as its textual rule-file token.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// IsGuard reports whether k is one of the "negative" predicates that act as
// filters during matching rather than facts looked up directly (spec
// §4.8.1).
func (k Kind) IsGuard() bool {
	return k == NEqKind || k == NCollKind
}

// kindByName inverts kindNames, for parsing rule/construction files.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}

	return m
}()

// ParseKind looks up a Kind by its textual token. Returns false if name is
// not one of the 16 recognized kinds.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[name]

	return k, ok
}
