package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
)

// Dump is a LeetCode style question export.
type Dump struct {
	Questions []DumpQuestion `json:"questions"`
}

type DumpQuestion struct {
	FrontendID   flexInt       `json:"frontendQuestionId"`
	Slug         string        `json:"titleSlug"`
	Title        string        `json:"title"`
	Difficulty   string        `json:"difficulty"`
	Status       *string       `json:"status"`
	PaidOnly     bool          `json:"paidOnly"`
	AcRate       float64       `json:"acRate"`
	Content      *string       `json:"content"`
	TopicTags    []DumpTopic   `json:"topicTags"`
	CodeSnippets []DumpSnippet `json:"codeSnippets"`
}

type DumpTopic struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type DumpSnippet struct {
	Lang     string `json:"lang"`
	LangSlug string `json:"langSlug"`
	Code     string `json:"code"`
}

// flexInt accepts both 1 and "1"; the API sends ids as strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("frontend id %s: %w", b, err)
	}
	*f = flexInt(n)
	return nil
}

// ImportStats reports what Import wrote.
type ImportStats struct {
	Questions int
	Topics    int
	Snippets  int
}

// Import decodes a dump from r and upserts it in one transaction.
func (s *Store) Import(ctx context.Context, r io.Reader) (ImportStats, error) {
	var dump Dump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return ImportStats{}, apperr.Wrap(apperr.KindSerialization, err, "decode question dump")
	}
	var stats ImportStats
	topics := map[string]bool{}
	err := withTx(s.db, func(tx *sql.Tx) error {
		for _, q := range dump.Questions {
			if q.Slug == "" || q.FrontendID <= 0 {
				continue
			}
			status := ""
			if q.Status != nil {
				status = *q.Status
			}
			content := ""
			if q.Content != nil {
				content = HTMLToText(*q.Content)
			}
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO questions(frontend_id, slug, title, difficulty, status, paid_only, ac_rate, content)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(frontend_id) DO UPDATE SET
			 slug=excluded.slug,
			 title=excluded.title,
			 difficulty=excluded.difficulty,
			 status=excluded.status,
			 paid_only=excluded.paid_only,
			 ac_rate=excluded.ac_rate,
			 content=CASE WHEN excluded.content = '' THEN questions.content ELSE excluded.content END;
			`, int(q.FrontendID), q.Slug, q.Title, q.Difficulty, status, q.PaidOnly, q.AcRate, content); err != nil {
				return fmt.Errorf("upsert question %s: %w", q.Slug, err)
			}
			stats.Questions++
			for _, t := range q.TopicTags {
				if t.Slug == "" {
					continue
				}
				if _, err := tx.ExecContext(ctx, `
				INSERT INTO topics(slug, name) VALUES (?, ?)
				ON CONFLICT(slug) DO UPDATE SET name=excluded.name;
				`, t.Slug, t.Name); err != nil {
					return fmt.Errorf("upsert topic %s: %w", t.Slug, err)
				}
				if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO question_topics(question_id, topic_slug) VALUES (?, ?)
				`, int(q.FrontendID), t.Slug); err != nil {
					return fmt.Errorf("tag question %s: %w", q.Slug, err)
				}
				topics[t.Slug] = true
			}
			for _, sn := range q.CodeSnippets {
				if sn.LangSlug == "" {
					continue
				}
				if _, err := tx.ExecContext(ctx, `
				INSERT INTO snippets(question_id, lang_slug, lang, code) VALUES (?, ?, ?, ?)
				ON CONFLICT(question_id, lang_slug) DO UPDATE SET lang=excluded.lang, code=excluded.code;
				`, int(q.FrontendID), sn.LangSlug, sn.Lang, sn.Code); err != nil {
					return fmt.Errorf("upsert snippet %s/%s: %w", q.Slug, sn.LangSlug, err)
				}
				stats.Snippets++
			}
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, apperr.Wrap(apperr.KindStorage, err, "import")
	}
	stats.Topics = len(topics)
	return stats, nil
}

var (
	blockTags  = regexp.MustCompile(`(?i)<\s*(br|/p|/div|/li|/pre|/h[1-6])\s*/?>`)
	listItem   = regexp.MustCompile(`(?i)<\s*li[^>]*>`)
	anyTag     = regexp.MustCompile(`<[^>]*>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// HTMLToText flattens question HTML into plain lines.
func HTMLToText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = blockTags.ReplaceAllString(s, "\n")
	s = listItem.ReplaceAllString(s, "• ")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
