package args

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	comaTerminatorToken
	eqTerminatorToken
	singleQuotedToken
	doubleQuotedToken
)

var (
	whitespaceMatcher     = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
	eqTerminatorMatcher   = parsly.NewToken(eqTerminatorToken, "eq", matcher.NewTerminator('=', true))
	singleQuotedMatcher   = parsly.NewToken(singleQuotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
	doubleQuotedMatcher   = parsly.NewToken(doubleQuotedToken, "\" .... \"", matcher.NewQuote('"', '\\'))
)
