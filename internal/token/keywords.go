package token

var keywords = map[string]Kind{
	"import":   KwImport,
	"export":   KwExport,
	"func":     KwFunc,
	"let":      KwLet,
	"mut":      KwMut,
	"return":   KwReturn,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"break":    KwBreak,
	"continue": KwContinue,
	"true":     KwTrue,
	"false":    KwFalse,
	"type":     KwType,
	"enum":     KwEnum,
	"record":   KwRecord,
	"variant":  KwVariant,
	"resource": KwResource,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые - только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
