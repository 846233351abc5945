package grammar

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Empty      bool        `parser:"  @';'"`
	Let        *Let        `parser:"| @@"`
	Return     *Return     `parser:"| @@"`
	Expression *Expression `parser:"| @@ ';'"`
}

type Let struct {
	Name  string      `parser:"'let' @Ident"`
	Value *Expression `parser:"'=' @@ ';'"`
}

type Return struct {
	Value *Expression `parser:"'return' @@ ';'"`
}

type Expression struct {
	Equality *Equality `parser:"@@"`
}

type Equality struct {
	Left  *Comparison   `parser:"@@"`
	Right []*OpEquality `parser:"@@*"`
}

type OpEquality struct {
	Op    string      `parser:"@( '==' | '!=' )"`
	Right *Comparison `parser:"@@"`
}

type Comparison struct {
	Left  *Sum            `parser:"@@"`
	Right []*OpComparison `parser:"@@*"`
}

type OpComparison struct {
	Op    string `parser:"@( '<' | '>' )"`
	Right *Sum   `parser:"@@"`
}

type Sum struct {
	Left  *Product `parser:"@@"`
	Right []*OpSum `parser:"@@*"`
}

type OpSum struct {
	Op    string   `parser:"@( '+' | '-' )"`
	Right *Product `parser:"@@"`
}

type Product struct {
	Left  *Unary       `parser:"@@"`
	Right []*OpProduct `parser:"@@*"`
}

type OpProduct struct {
	Op    string `parser:"@( '*' | '/' )"`
	Right *Unary `parser:"@@"`
}

type Unary struct {
	Op      string   `parser:"  ( @( '-' | '!' )"`
	Operand *Unary   `parser:"    @@ )"`
	Primary *Primary `parser:"| @@"`
}

type Primary struct {
	Ident *string `parser:"  @Ident"`
	Int   *string `parser:"| @Int"`
}
