package i18n

import "sync"

// Translator retrieves localized messages for diagnostic label codes.
// data provides optional values to embed in the message (for example,
// "char" or "column").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator serves the built-in English and Japanese messages.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "char":
			return "文字 '" + data["char"] + "' が必要です"
		case "strand":
			return "'+' または '-' が必要です"
		case "utf8_string":
			return "utf-8 文字列が必要です"
		case "uint64":
			return "符号なし 64 ビット整数が必要です"
		case "uint8":
			return "符号なし 8 ビット整数が必要です"
		case "end_of_input":
			return "入力の終端が必要です"
		case "column":
			return "列: " + data["column"]
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "char":
			return "expected character '" + data["char"] + "'"
		case "strand":
			return "expected either '+' or '-'"
		case "utf8_string":
			return "expected a utf-8 string"
		case "uint64":
			return "expected an unsigned 64-bit integer"
		case "uint8":
			return "expected an unsigned 8-bit integer"
		case "end_of_input":
			return "expected end of input"
		case "column":
			return "in column: " + data["column"]
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage selects the dictionary messages for lang. Anything but
// "ja" selects English.
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator installs tr for all later diagnostics. A nil tr restores
// the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T renders code with the installed Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
