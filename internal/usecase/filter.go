package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/mentionscope/mentions-worker/internal/domain"
)

// Минимальные длины полей, ниже которых запись считается шумом
// (обрезанные тизеры, пустые агрегаторные карточки и т.п.).
const (
	minTitleLen       = 10
	minDescriptionLen = 20
)

// isNoise — отсеять статьи, по которым нет смысла считать тональность.
func isNoise(article *domain.ArticleRecord) bool {
	title := strings.TrimSpace(article.Title)
	if utf8.RuneCountInString(title) < minTitleLen {
		return true
	}
	description := strings.TrimSpace(article.Description)
	return utf8.RuneCountInString(description) < minDescriptionLen
}
