package postfix

// EvalOption is an option for Eval, EvalLine, and ReadAll.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

type (
	strictopt  bool
	workersopt int
)

// evalctx holds the settings collected from options.
type evalctx struct {
	// strict makes division by zero an error.
	strict bool
	// workers is the number of goroutines ReadAll evaluates with.
	workers int
}

func newEvalctx(opts []EvalOption) evalctx {
	p := evalctx{workers: 1}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.evalOption(p)
	}
	return p
}

// StrictDivision makes division by zero return a *DivisionError. Without it,
// division follows IEEE-754 and produces ±Inf or NaN.
func StrictDivision() EvalOption {
	return strictopt(true)
}

func (o strictopt) evalOption(p evalctx) evalctx {
	p.strict = bool(o)
	return p
}

// Workers sets the number of goroutines ReadAll uses to evaluate lines. Values
// below 1 mean 1. It has no effect on Eval or EvalLine.
func Workers(n int) EvalOption {
	if n < 1 {
		n = 1
	}
	return workersopt(n)
}

func (o workersopt) evalOption(p evalctx) evalctx {
	p.workers = int(o)
	return p
}
