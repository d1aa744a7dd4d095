package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "qualifier" or "symbol").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "forbidden_qualifier":
			return "この位置では使用できない修飾子です"
		case "invalid_literal_value":
			return "リテラル値として不正です"
		case "unresolved_alias":
			return "型エイリアスを解決できません"
		case "unevaluated_reference":
			return "前方参照が未評価です"
		case "invalid_annotation_expression":
			return "アノテーション式として不正です"
		case "parameter_binding":
			return "型パラメータを束縛できません"
		}
	default: // "en"
		switch code {
		case "forbidden_qualifier":
			return "qualifier not allowed here"
		case "invalid_literal_value":
			return "invalid literal value"
		case "unresolved_alias":
			return "type alias cannot be resolved"
		case "unevaluated_reference":
			return "forward reference not evaluated"
		case "invalid_annotation_expression":
			return "invalid annotation expression"
		case "parameter_binding":
			return "cannot bind type parameters"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
