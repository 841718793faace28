// Package language classifies email text as English or Traditional Chinese.
package language

// Language is a supported language tag.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Other returns the complement of l within the supported pair.
func Other(l Language) Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Detect classifies text by counting CJK ideographs against ASCII letters.
// A language wins when its count is more than double the other's; everything
// else, including empty input, defaults to English.
func Detect(text string) Language {
	var cjk, latin int
	for _, r := range text {
		switch {
		case r >= 0x4e00 && r <= 0x9fff:
			cjk++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}

	if cjk > latin*2 {
		return Chinese
	}
	return English
}
