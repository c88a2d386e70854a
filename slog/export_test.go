package slog_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/mock"
	faqslog "github.com/fwojciec/faqmine/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExporter_Export(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Exporter{
		ExportFn: func(w io.Writer, _ []*faqmine.FAQItem, _ faqmine.ExportMetadata) error {
			_, err := io.WriteString(w, "0123456789")
			return err
		},
		ExtensionFn: func() string { return "csv" },
	}

	exp := faqslog.NewLoggingExporter(inner, logger)
	var out bytes.Buffer
	err := exp.Export(&out, []*faqmine.FAQItem{{}, {}}, faqmine.ExportMetadata{})

	require.NoError(t, err)
	assert.Equal(t, "0123456789", out.String())
	assert.Equal(t, "csv", exp.Extension())
	output := buf.String()
	assert.Contains(t, output, "msg=export")
	assert.Contains(t, output, "format=csv")
	assert.Contains(t, output, "faqs=2")
	assert.Contains(t, output, "bytes=10")
}
