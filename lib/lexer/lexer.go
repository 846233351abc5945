package lexer

// Lexer turns source text into tokens on demand. Once the input is exhausted
// every call to NextToken returns an EOF token.
type Lexer struct {
	input        string
	filename     string
	position     int // offset of ch
	readPosition int // offset of the byte after ch
	ch           byte
	line         int
	column       int
}

func New(input string) *Lexer {
	return NewFile("", input)
}

// NewFile creates a lexer whose token positions carry filename.
func NewFile(filename, input string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		line:     1,
	}
	l.readChar()
	return l
}

var singleChar = map[byte]Kind{
	'{': LBrace,
	'}': RBrace,
	'(': LParen,
	')': RParen,
	',': Comma,
	';': Semicolon,
	'+': Plus,
	'-': Minus,
	'*': Asterisk,
	'/': Slash,
	'<': LessThan,
	'>': GreaterThan,
}

// NextToken returns the next token from the source.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: l.pos()}

	switch l.ch {
	case 0:
		tok.Kind = EOF
		return tok
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Kind, tok.Literal = Equal, "=="
		} else {
			tok.Kind, tok.Literal = Assign, "="
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Kind, tok.Literal = NotEqual, "!="
		} else {
			tok.Kind, tok.Literal = Bang, "!"
		}
	default:
		if kind, ok := singleChar[l.ch]; ok {
			tok.Kind, tok.Literal = kind, l.input[l.position:l.readPosition]
			break
		}
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Kind = LookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.ch) {
			tok.Kind, tok.Literal = Int, l.readNumber()
			return tok
		}
		tok.Kind, tok.Literal = Illegal, l.input[l.position:l.readPosition]
	}

	l.readChar()
	return tok
}

// Tokenize lexes input up to and including the first EOF token.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' || l.ch == '\f' {
		l.readChar()
	}
}

func (l *Lexer) pos() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.position,
		Line:     l.line,
		Column:   l.column,
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
