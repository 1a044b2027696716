package uritemplate

// Operator is the expansion style selector of a substitution: the single
// character that may immediately follow '{'. The zero value OpNone is the
// default simple-expansion style.
type Operator byte

const (
	// OpNone is simple string expansion: {var}.
	OpNone Operator = 0

	// OpReserved is reserved expansion: {+var}.
	OpReserved Operator = '+'

	// OpFragment is fragment expansion: {#var}.
	OpFragment Operator = '#'

	// OpLabel is dot-prefixed label expansion: {.var}.
	OpLabel Operator = '.'

	// OpPath is path segment expansion: {/var}.
	OpPath Operator = '/'

	// OpParameter is path-style parameter expansion: {;var}.
	OpParameter Operator = ';'

	// OpQuery is form-style query expansion: {?var}.
	OpQuery Operator = '?'

	// OpQueryContinue is form-style query continuation: {&var}.
	OpQueryContinue Operator = '&'
)

// String returns the operator character, or "" for OpNone.
func (op Operator) String() string {
	if op == OpNone {
		return ""
	}
	return string(byte(op))
}

// opSpec is the formatting policy of one operator: pure presentation,
// fully decoupled from value semantics.
type opSpec struct {
	// prefix is emitted once before the substitution's first contribution.
	prefix string
	// sep joins variable contributions and exploded elements.
	sep byte
	// reserved selects reserved-safe escaping over full escaping.
	reserved bool
	// named emits name=value pairs instead of bare values.
	named bool
	// trimEmpty drops the '=' of a named pair whose value is empty.
	trimEmpty bool
}

// opSpecs maps every operator, including OpNone, to its formatting policy.
// Mirrors the operator table of RFC 6570 section 2.2.
var opSpecs = map[Operator]opSpec{
	OpNone:          {prefix: "", sep: ',', reserved: false, named: false, trimEmpty: false},
	OpReserved:      {prefix: "", sep: ',', reserved: true, named: false, trimEmpty: false},
	OpFragment:      {prefix: "#", sep: ',', reserved: true, named: false, trimEmpty: false},
	OpLabel:         {prefix: ".", sep: '.', reserved: false, named: false, trimEmpty: false},
	OpPath:          {prefix: "/", sep: '/', reserved: false, named: false, trimEmpty: false},
	OpParameter:     {prefix: ";", sep: ';', reserved: false, named: true, trimEmpty: true},
	OpQuery:         {prefix: "?", sep: '&', reserved: false, named: true, trimEmpty: false},
	OpQueryContinue: {prefix: "&", sep: '&', reserved: false, named: true, trimEmpty: false},
}

// spec returns the formatting policy for the operator.
func (op Operator) spec() opSpec {
	return opSpecs[op]
}

// operatorFor maps a template byte to its Operator, if it is one.
func operatorFor(c byte) (Operator, bool) {
	switch c {
	case '+', '#', '.', '/', ';', '?', '&':
		return Operator(c), true
	default:
		return OpNone, false
	}
}
