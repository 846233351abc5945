package ast

// Precedence is the binding strength of an operator, weakest first.
type Precedence int

const (
	Lowest      Precedence = iota
	Equals                 // ==
	LessGreater            // > or <
	Sum                    // +
	Product                // *
	Prefix                 // -X or !X
	Call                   // myFunc(X)
)

var precedenceNames = [...]string{
	Lowest:      "Lowest",
	Equals:      "Equals",
	LessGreater: "LessGreater",
	Sum:         "Sum",
	Product:     "Product",
	Prefix:      "Prefix",
	Call:        "Call",
}

func (p Precedence) String() string {
	if p >= 0 && int(p) < len(precedenceNames) {
		return precedenceNames[p]
	}
	return "Unknown"
}
