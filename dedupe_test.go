package faqmine_test

import (
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "What is your return policy?", want: "what is your return policy"},
		{in: "WHAT IS YOUR RETURN POLICY???", want: "what is your return policy"},
		{in: "  What   is\tit?!  ", want: "what is it"},
		{in: "Wie funktioniert die Rückgabe?", want: "wie funktioniert die rückgabe"},
		{in: "Ｆｕｌｌ ｗｉｄｔｈ？", want: "full width"},
		{in: "???", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, faqmine.NormalizeQuestion(tt.in))
		})
	}
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	t.Run("collapses case and punctuation variants", func(t *testing.T) {
		t.Parallel()

		first := &faqmine.FAQItem{ID: "1", Question: "What is your return policy?"}
		second := &faqmine.FAQItem{ID: "2", Question: "WHAT IS YOUR RETURN POLICY???"}

		got := faqmine.Dedupe([]*faqmine.FAQItem{first, second})

		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
		assert.True(t, got[0].IsDuplicate)
	})

	t.Run("keeps one item for many copies", func(t *testing.T) {
		t.Parallel()

		items := []*faqmine.FAQItem{
			{ID: "1", Question: "How do I pay?"},
			{ID: "2", Question: "Do you ship abroad?"},
			{ID: "3", Question: "how do i pay"},
			{ID: "4", Question: "How do I pay!"},
		}

		got := faqmine.Dedupe(items)

		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.True(t, got[0].IsDuplicate)
		assert.Equal(t, "2", got[1].ID)
		assert.False(t, got[1].IsDuplicate)
	})

	t.Run("leaves unique items unflagged", func(t *testing.T) {
		t.Parallel()

		items := []*faqmine.FAQItem{
			{ID: "1", Question: "How do I pay?"},
			{ID: "2", Question: "Do you ship abroad?"},
		}

		got := faqmine.Dedupe(items)

		require.Len(t, got, 2)
		assert.False(t, got[0].IsDuplicate)
		assert.False(t, got[1].IsDuplicate)
	})

	t.Run("keeps items with empty keys", func(t *testing.T) {
		t.Parallel()

		items := []*faqmine.FAQItem{{ID: "1", Question: "?"}, {ID: "2", Question: "!"}}

		got := faqmine.Dedupe(items)

		assert.Len(t, got, 2)
	})

	t.Run("returns empty slice for no input", func(t *testing.T) {
		t.Parallel()

		got := faqmine.Dedupe(nil)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
