package sqlite

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/faqmine"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ faqmine.RunService = (*RunService)(nil)

// RunService implements faqmine.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashFAQ computes the xxHash of a normalized question and answer pair and
// returns it as hex. Equal hashes across runs mark the same FAQ.
func hashFAQ(faq *faqmine.FAQItem) string {
	h := xxhash.New()
	_, _ = h.WriteString(faqmine.NormalizeQuestion(faq.Question))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(faq.Answer)
	return hex.EncodeToString(h.Sum(nil))
}

// CreateRun stores a run and its FAQs in a single transaction.
func (s *RunService) CreateRun(ctx context.Context, run *faqmine.Run, faqs []*faqmine.FAQItem) error {
	if err := run.Validate(); err != nil {
		return err
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.FAQCount = len(faqs)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, mode, page_count, faq_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.Mode, run.PageCount, run.FAQCount, formatTimestamp(run.CreatedAt)); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return faqmine.Errorf(faqmine.ECONFLICT, "run %q already exists", run.ID)
		}
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO faqs (id, run_id, position, question, answer, category, language, source_url,
			confidence, is_incomplete, is_duplicate, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, faq := range faqs {
		if faq.ID == "" {
			faq.ID = uuid.New().String()
		}
		if faq.ExtractedAt.IsZero() {
			faq.ExtractedAt = run.CreatedAt
		}
		if _, err := stmt.ExecContext(ctx,
			faq.ID, run.ID, i, faq.Question, faq.Answer, faq.Category, faq.Language, faq.SourceURL,
			string(faq.Confidence), faq.IsIncomplete, faq.IsDuplicate, hashFAQ(faq),
			formatTimestamp(faq.ExtractedAt),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*faqmine.Run, error) {
	runs, err := s.FindRuns(ctx, faqmine.RunFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, faqmine.Errorf(faqmine.ENOTFOUND, "run not found")
	}
	return runs[0], nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter faqmine.RunFilter) ([]*faqmine.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, mode, page_count, faq_count, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*faqmine.Run{}
	for rows.Next() {
		var run faqmine.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.Source, &run.Mode, &run.PageCount, &run.FAQCount, &createdAt); err != nil {
			return nil, err
		}

		if run.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// FindFAQs retrieves stored FAQs matching the filter in extraction order.
func (s *RunService) FindFAQs(ctx context.Context, filter faqmine.FAQFilter) ([]*faqmine.FAQItem, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, question, answer, category, language, source_url, confidence,
		is_incomplete, is_duplicate, extracted_at FROM faqs WHERE 1=1`)

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Confidence != nil {
		query.WriteString(" AND confidence = ?")
		args = append(args, string(*filter.Confidence))
	}

	query.WriteString(" ORDER BY run_id, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []*faqmine.FAQItem{}
	for rows.Next() {
		var faq faqmine.FAQItem
		var confidence, extractedAt string

		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer, &faq.Category, &faq.Language,
			&faq.SourceURL, &confidence, &faq.IsIncomplete, &faq.IsDuplicate, &extractedAt); err != nil {
			return nil, err
		}
		faq.Confidence = faqmine.Confidence(confidence)

		if faq.ExtractedAt, err = parseTimestamp(extractedAt, "extracted_at"); err != nil {
			return nil, err
		}

		faqs = append(faqs, &faq)
	}

	return faqs, rows.Err()
}

// DeleteRun permanently removes a run. Its FAQs are removed by cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return faqmine.Errorf(faqmine.ENOTFOUND, "run not found")
	}

	return nil
}
