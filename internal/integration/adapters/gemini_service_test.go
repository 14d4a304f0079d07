// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"testing"

	"github.com/goaltracker/backend/internal/domain/entity"
)

func TestParseJSONRecommendations(t *testing.T) {
	t.Run("parses the JSON envelope", func(t *testing.T) {
		text := `{"recommendations":[
			{"title":"Walk daily","category":"fitness","description":"d","plan":"p","reasoning":"r"},
			{"title":"Sleep earlier","category":"sleep","description":"d","plan":"p","reasoning":"r"}
		]}`

		drafts := parseJSONRecommendations(text)

		if len(drafts) != 2 {
			t.Fatalf("expected 2 drafts, got %d", len(drafts))
		}
		if drafts[0].Title != "Walk daily" || drafts[0].Category != entity.CategoryFitness {
			t.Errorf("unexpected first draft: %+v", drafts[0])
		}
	})

	t.Run("tolerates prose around the JSON", func(t *testing.T) {
		text := "Here are your goals:\n" +
			`{"recommendations":[{"title":"Hydrate","category":"nutrition","description":"d","plan":"p","reasoning":"r"}]}` +
			"\nLet me know if you need more."

		drafts := parseJSONRecommendations(text)

		if len(drafts) != 1 {
			t.Fatalf("expected 1 draft, got %d", len(drafts))
		}
	})

	t.Run("maps unknown categories to other", func(t *testing.T) {
		text := `{"recommendations":[{"title":"X","category":"finances","description":"d","plan":"p","reasoning":"r"}]}`

		drafts := parseJSONRecommendations(text)

		if len(drafts) != 1 {
			t.Fatalf("expected 1 draft, got %d", len(drafts))
		}
		if drafts[0].Category != entity.CategoryOther {
			t.Errorf("expected category other, got %q", drafts[0].Category)
		}
	})

	t.Run("skips entries without a title", func(t *testing.T) {
		text := `{"recommendations":[{"title":"","category":"fitness"},{"title":"Y","category":"fitness"}]}`

		drafts := parseJSONRecommendations(text)

		if len(drafts) != 1 {
			t.Fatalf("expected 1 draft, got %d", len(drafts))
		}
	})

	t.Run("returns nil for non-JSON text", func(t *testing.T) {
		if drafts := parseJSONRecommendations("no json here"); drafts != nil {
			t.Errorf("expected nil, got %v", drafts)
		}
	})
}

func TestParseLabeledRecommendations(t *testing.T) {
	text := `
Title: Morning Walks
Category: Fitness
Description: Build a walking habit
Plan: Walk 20 minutes every morning
Reasoning: Low barrier to entry

Title: Screen-Free Evenings
Category: productivity
Description: Reduce evening screen time
Plan: No screens after 9pm
Reasoning: Improves sleep quality
`

	drafts := parseLabeledRecommendations(text)

	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].Title != "Morning Walks" {
		t.Errorf("unexpected title %q", drafts[0].Title)
	}
	if drafts[0].Category != entity.CategoryFitness {
		t.Errorf("expected fitness category, got %q", drafts[0].Category)
	}
	if drafts[1].Plan != "No screens after 9pm" {
		t.Errorf("unexpected plan %q", drafts[1].Plan)
	}
}
