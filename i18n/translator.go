package i18n

// Translator retrieves localized messages for Failure codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "found").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return data["expected"] + " を期待しましたが " + data["found"] + " でした"
		case "invalid_literal":
			return "リテラル \"" + data["want"] + "\" を期待しましたが \"" + data["got"] + "\" でした"
		case "invalid_enum":
			return "\"" + data["got"] + "\" は許可されていない値です"
		case "invalid_length":
			return "長さ " + data["want"] + " の配列を期待しましたが長さ " + data["got"] + " でした"
		case "invalid_json":
			return "不正な JSON 文字列です"
		case "invalid_format":
			if r := data["reason"]; r != "" {
				return r
			}
			return "形式が不正です"
		case "uninitialized_recursion":
			return "初期化前に再帰デコーダが呼び出されました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "expected " + data["expected"] + " but found " + data["found"]
		case "invalid_literal":
			return "expected \"" + data["want"] + "\" but found \"" + data["got"] + "\""
		case "invalid_enum":
			return "\"" + data["got"] + "\" is not a valid value"
		case "invalid_length":
			return "expected array of length " + data["want"] + " but found length " + data["got"]
		case "invalid_json":
			return "Invalid JSON string"
		case "invalid_format":
			if r := data["reason"]; r != "" {
				return r
			}
			return "invalid format"
		case "uninitialized_recursion":
			return "recursive decoder invoked before initialization"
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

// SetTranslator replaces the Translator implementation (not limited to
// the dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
