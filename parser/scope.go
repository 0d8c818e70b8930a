package parser

type scope struct {
	outer      *scope
	allowIn    bool
	inFunction bool
	allowAwait bool
	allowYield bool
	inClass    bool
}

func (p *parser) openScope() {
	outer := p.scope
	p.scope = &scope{
		outer:   outer,
		allowIn: true,
	}
	if outer != nil {
		p.scope.inClass = outer.inClass
	}
}

// openFunctionScope opens the scope of a function body or parameter list.
func (p *parser) openFunctionScope(async, generator bool) {
	p.openScope()
	p.scope.inFunction = true
	p.scope.allowAwait = async
	p.scope.allowYield = generator
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}
