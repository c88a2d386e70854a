package lingua_test

import (
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/lingua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_DetectLanguage(t *testing.T) {
	t.Parallel()

	detector, err := lingua.NewDetector()
	require.NoError(t, err)

	t.Run("detects english", func(t *testing.T) {
		t.Parallel()

		got := detector.DetectLanguage("How long does shipping take?\nOrders usually arrive within three to five business days.")

		assert.Equal(t, "English", got)
	})

	t.Run("detects german", func(t *testing.T) {
		t.Parallel()

		got := detector.DetectLanguage("Wie lange dauert der Versand?\nDie Lieferung dauert in der Regel zwei bis drei Werktage.")

		assert.Equal(t, "German", got)
	})

	t.Run("reports default language for empty text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, faqmine.DefaultLanguage, detector.DetectLanguage("  "))
	})
}

func TestNewDetector(t *testing.T) {
	t.Parallel()

	t.Run("accepts language names case-insensitively", func(t *testing.T) {
		t.Parallel()

		_, err := lingua.NewDetector("english", "GERMAN")

		require.NoError(t, err)
	})

	t.Run("rejects unknown languages", func(t *testing.T) {
		t.Parallel()

		_, err := lingua.NewDetector("English", "Klingon")

		assert.Equal(t, faqmine.EINVALID, faqmine.ErrorCode(err))
	})

	t.Run("requires two languages", func(t *testing.T) {
		t.Parallel()

		_, err := lingua.NewDetector("English")

		assert.Equal(t, faqmine.EINVALID, faqmine.ErrorCode(err))
	})
}
