// Package faqmine recovers FAQ-style question/answer pairs from crawled
// website content. Pages are cleaned of navigation noise, scanned by a set
// of independent pattern extractors, validated, categorized, graded for
// confidence and deduplicated across the whole run. An LLM-backed path can
// be used instead of, or in front of, the heuristic engine.
//
// This package contains domain types, interfaces and the pure text
// heuristics following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, openai/).
package faqmine
