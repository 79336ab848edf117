package grammar

import "github.com/dekarrin/canonlr/lrerrors"

const (
	reasonEmpty           = lrerrors.ReasonEmpty
	reasonUnknownStart    = lrerrors.ReasonUnknownStart
	reasonReservedSymbol  = lrerrors.ReasonReservedSymbolInRHS
	reasonStartNoProdRule = lrerrors.ReasonStartHasNoProdution
)

func newInvalidGrammarError(reason lrerrors.GrammarReason, detail string) *lrerrors.InvalidGrammarError {
	return &lrerrors.InvalidGrammarError{Reason: reason, Detail: detail}
}
