package store

import (
	"testing"

	"newsverify/internal/model"
)

func TestLocalizeUsesTranslationBundle(t *testing.T) {
	in := model.News{
		ID:       3,
		Title:    "原始标题",
		Summary:  "原始摘要",
		Content:  "原始正文",
		Reporter: "记者甲",
		Source:   "新华社",
		Translations: map[string]model.Translation{
			"en": {
				Title:    "Translated Title",
				Summary:  "Translated Summary",
				Content:  "Translated Content",
				Reporter: "Reporter A",
				Source:   "Xinhua News Agency",
			},
		},
	}
	out := Localize(in)
	if out.Title != "Translated Title" || out.Summary != "Translated Summary" || out.Content != "Translated Content" {
		t.Fatalf("bundle not applied: %+v", out)
	}
	if out.Reporter != "Reporter A" || out.Source != "Xinhua News Agency" {
		t.Fatalf("reporter/source not overridden: %+v", out)
	}
	if in.Title != "原始标题" {
		t.Fatal("input mutated")
	}
}

func TestLocalizePartialBundleKeepsOriginals(t *testing.T) {
	in := model.News{
		ID:       4,
		Reporter: "记者乙",
		Source:   "某报",
		Translations: map[string]model.Translation{
			"en": {Title: "T", Summary: "S", Content: "C"},
		},
	}
	out := Localize(in)
	if out.Reporter != "记者乙" || out.Source != "某报" {
		t.Fatalf("empty bundle fields should keep originals: %+v", out)
	}
}

func TestLocalizePlaceholders(t *testing.T) {
	out := Localize(model.News{ID: 7, Title: "无翻译"})
	if out.Title != "News Report 7" {
		t.Errorf("title = %q", out.Title)
	}
	if out.Summary != "Summary for news 7" {
		t.Errorf("summary = %q", out.Summary)
	}
	if out.Content != "Content for news 7" {
		t.Errorf("content = %q", out.Content)
	}

	// A bundle with an empty title counts as unusable.
	out = Localize(model.News{
		ID:           8,
		Translations: map[string]model.Translation{"en": {Summary: "only summary"}},
	})
	if out.Title != "News Report 8" {
		t.Errorf("empty-title bundle: title = %q", out.Title)
	}
}
