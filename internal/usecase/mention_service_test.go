package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mentionscope/mentions-worker/internal/domain"
	"github.com/mentionscope/mentions-worker/internal/ports/mocks"
	"github.com/mentionscope/mentions-worker/internal/usecase"
)

const entryID = "1700000000000-0"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// articlePayload — запись стрима с полноценной статьёй (не шум).
func articlePayload() map[string]any {
	return map[string]any{
		"title":          "Acme Corp announces record quarterly results",
		"description":    "The company reported a 40% jump in revenue driven by strong cloud demand.",
		"author":         "Jane Reporter",
		"url":            "https://news.example.com/acme-results",
		"search_keyword": "Acme Corp",
	}
}

func TestProcessEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockMentionRepository(ctrl)
	classifier := mocks.NewMockSentimentClassifier(ctrl)
	log := noopLogger{}

	want := domain.SentimentResult{Label: domain.SentimentPositive, Score: 0.91}

	gomock.InOrder(
		classifier.EXPECT().
			Classify(gomock.Any(), "The company reported a 40% jump in revenue driven by strong cloud demand.").
			Return(want),
		repo.EXPECT().
			Save(gomock.Any(), gomock.AssignableToTypeOf(&domain.EnrichedMention{})).
			DoAndReturn(func(_ context.Context, m *domain.EnrichedMention) error {
				if m.Sentiment != want {
					t.Fatalf("unexpected sentiment: %+v", m.Sentiment)
				}
				if m.Article.Title != "Acme Corp announces record quarterly results" {
					t.Fatalf("unexpected article: %+v", m.Article)
				}
				if m.Raw == nil {
					t.Fatalf("raw payload must be preserved")
				}
				return nil
			}),
	)

	svc := usecase.NewMentionService(repo, classifier, log)
	if err := svc.ProcessEntry(context.Background(), entryID, articlePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessEntry_SingleJSONField(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockMentionRepository(ctrl)
	classifier := mocks.NewMockSentimentClassifier(ctrl)
	log := noopLogger{}

	payload := map[string]any{
		"article": `{"title":"Acme Corp announces record quarterly results",` +
			`"description":"The company reported a 40% jump in revenue this quarter."}`,
	}

	classifier.EXPECT().
		Classify(gomock.Any(), "The company reported a 40% jump in revenue this quarter.").
		Return(domain.SentimentResult{Label: domain.SentimentNeutral, Score: 0.5})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := usecase.NewMentionService(repo, classifier, log)
	if err := svc.ProcessEntry(context.Background(), entryID, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessEntry_SingleMapField(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockMentionRepository(ctrl)
	classifier := mocks.NewMockSentimentClassifier(ctrl)
	log := noopLogger{}

	payload := map[string]any{
		"article": map[string]any{
			"title":       "Acme Corp announces record quarterly results",
			"description": "The company reported a 40% jump in revenue this quarter.",
		},
	}

	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).
		Return(domain.SentimentResult{Label: domain.SentimentNegative, Score: 0.7})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := usecase.NewMentionService(repo, classifier, log)
	if err := svc.ProcessEntry(context.Background(), entryID, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessEntry_MalformedPayloads(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{name: "empty", payload: map[string]any{}},
		{name: "broken json string", payload: map[string]any{"article": "{not json"}},
		{name: "unsupported value type", payload: map[string]any{"article": 42}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := mocks.NewMockMentionRepository(ctrl)
			classifier := mocks.NewMockSentimentClassifier(ctrl)
			log := noopLogger{}

			// До классификатора и хранилища дело дойти не должно.
			classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Times(0)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

			svc := usecase.NewMentionService(repo, classifier, log)
			err := svc.ProcessEntry(context.Background(), entryID, tc.payload)
			if !errors.Is(err, usecase.ErrMalformedEntry) {
				t.Fatalf("want ErrMalformedEntry, got %v", err)
			}
		})
	}
}

func TestProcessEntry_NoiseFiltered(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{name: "short title", payload: map[string]any{
			"title":       "Short",
			"description": "A description that is certainly long enough to pass the threshold.",
		}},
		{name: "short description", payload: map[string]any{
			"title":       "A fully qualified headline about something",
			"description": "too short",
		}},
		{name: "missing description", payload: map[string]any{
			"title": "A fully qualified headline about something",
			"url":   "https://news.example.com/x",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := mocks.NewMockMentionRepository(ctrl)
			classifier := mocks.NewMockSentimentClassifier(ctrl)
			log := noopLogger{}

			// Шум не классифицируем и не сохраняем, но и ошибкой не считаем.
			classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Times(0)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

			svc := usecase.NewMentionService(repo, classifier, log)
			if err := svc.ProcessEntry(context.Background(), entryID, tc.payload); err != nil {
				t.Fatalf("noise must not be an error, got %v", err)
			}
		})
	}
}

func TestProcessEntry_ClassifierFaultStillPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockMentionRepository(ctrl)
	classifier := mocks.NewMockSentimentClassifier(ctrl)
	log := noopLogger{}

	// Сбой классификатора сворачивается в ERROR_* — запись всё равно сохраняется.
	fault := domain.SentimentResult{Label: domain.SentimentErrorAPI, Score: 0.0}

	gomock.InOrder(
		classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(fault),
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.EnrichedMention) error {
				if m.Sentiment.Label != domain.SentimentErrorAPI {
					t.Fatalf("want fault label persisted, got %+v", m.Sentiment)
				}
				return nil
			}),
	)

	svc := usecase.NewMentionService(repo, classifier, log)
	if err := svc.ProcessEntry(context.Background(), entryID, articlePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessEntry_RepoErr(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockMentionRepository(ctrl)
	classifier := mocks.NewMockSentimentClassifier(ctrl)
	log := noopLogger{}

	gomock.InOrder(
		classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).
			Return(domain.SentimentResult{Label: domain.SentimentNeutral, Score: 0.5}),
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")),
	)

	svc := usecase.NewMentionService(repo, classifier, log)
	err := svc.ProcessEntry(context.Background(), entryID, articlePayload())
	if err == nil || !strings.Contains(err.Error(), "failed to save mention") {
		t.Fatalf("want wrapped save error, got %v", err)
	}
	if errors.Is(err, usecase.ErrMalformedEntry) {
		t.Fatalf("repo error must not be classified as malformed")
	}
}
