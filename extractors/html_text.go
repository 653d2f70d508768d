package extractors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ContainsMarkup определяет, содержит ли текст HTML-разметку.
// Используется проверками качества: описания продуктов в экспорте
// должны быть чистым текстом, теги в них — признак кривого импорта.
func ContainsMarkup(text string) bool {
	if !strings.ContainsRune(text, '<') {
		return false
	}

	tokenizer := html.NewTokenizer(strings.NewReader(text))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			return true
		}
	}
}

// ExtractText извлекает чистый текст из HTML-фрагмента: теги
// отбрасываются, серии пробелов схлопываются. Невалидная разметка
// не является ошибкой — парсер берет из нее что может.
func ExtractText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
