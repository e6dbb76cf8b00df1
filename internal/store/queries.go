package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/model"
)

const questionColumns = `q.frontend_id, q.slug, q.title, q.difficulty, q.status, q.paid_only, q.ac_rate`

// Topics lists topics that have at least one question, by name.
func (s *Store) Topics(ctx context.Context) ([]model.Topic, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT t.slug, t.name FROM topics t
	WHERE EXISTS (SELECT 1 FROM question_topics qt WHERE qt.topic_slug = t.slug)
	ORDER BY t.name`)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, err, "list topics")
	}
	defer rows.Close()
	var out []model.Topic
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Name); err != nil {
			return nil, apperr.Wrap(apperr.KindStorage, err, "scan topic")
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Questions lists the questions tagged with topic, or every question for the
// "all" topic, ordered by frontend id.
func (s *Store) Questions(ctx context.Context, topic model.Topic) ([]model.Question, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if topic.Slug == "" || topic.Slug == model.AllTopicSlug {
		rows, err = s.db.QueryContext(ctx, `SELECT `+questionColumns+` FROM questions q ORDER BY q.frontend_id`)
	} else {
		rows, err = s.db.QueryContext(ctx, `
		SELECT `+questionColumns+` FROM questions q
		JOIN question_topics qt ON qt.question_id = q.frontend_id
		WHERE qt.topic_slug = ?
		ORDER BY q.frontend_id`, topic.Slug)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, err, "list questions")
	}
	defer rows.Close()
	out := []model.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (model.Question, error) {
	var (
		q          model.Question
		difficulty string
		paid       int
	)
	if err := row.Scan(&q.FrontendID, &q.Slug, &q.Title, &difficulty, &q.Status, &paid, &q.AcRate); err != nil {
		return model.Question{}, apperr.Wrap(apperr.KindStorage, err, "scan question")
	}
	q.Difficulty = model.Difficulty(difficulty)
	q.PaidOnly = paid != 0
	return q, nil
}

// Question loads one question by slug.
func (s *Store) Question(ctx context.Context, slug string) (model.Question, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+questionColumns+` FROM questions q WHERE q.slug = ?`, slug)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Question{}, apperr.New(apperr.KindStorage, fmt.Sprintf("question %q not found", slug))
	}
	return q, err
}

// Detail loads a question with its content and topics.
func (s *Store) Detail(ctx context.Context, slug string) (model.QuestionDetail, error) {
	q, err := s.Question(ctx, slug)
	if err != nil {
		return model.QuestionDetail{}, err
	}
	d := model.QuestionDetail{Question: q}
	if err := s.db.QueryRowContext(ctx, `SELECT content FROM questions WHERE frontend_id = ?`, q.FrontendID).Scan(&d.Content); err != nil {
		return model.QuestionDetail{}, apperr.Wrap(apperr.KindStorage, err, "load content")
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT t.slug, t.name FROM topics t
	JOIN question_topics qt ON qt.topic_slug = t.slug
	WHERE qt.question_id = ?
	ORDER BY t.name`, q.FrontendID)
	if err != nil {
		return model.QuestionDetail{}, apperr.Wrap(apperr.KindStorage, err, "load topics")
	}
	defer rows.Close()
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Name); err != nil {
			return model.QuestionDetail{}, apperr.Wrap(apperr.KindStorage, err, "scan topic")
		}
		d.Topics = append(d.Topics, t)
	}
	return d, rows.Err()
}

// Snippets lists the starter code of a question, by language name.
func (s *Store) Snippets(ctx context.Context, slug string) (model.Question, []model.Snippet, error) {
	q, err := s.Question(ctx, slug)
	if err != nil {
		return model.Question{}, nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT lang, lang_slug, code FROM snippets WHERE question_id = ? ORDER BY lang`, q.FrontendID)
	if err != nil {
		return model.Question{}, nil, apperr.Wrap(apperr.KindStorage, err, "list snippets")
	}
	defer rows.Close()
	var out []model.Snippet
	for rows.Next() {
		var sn model.Snippet
		if err := rows.Scan(&sn.Lang, &sn.LangSlug, &sn.Code); err != nil {
			return model.Question{}, nil, apperr.Wrap(apperr.KindStorage, err, "scan snippet")
		}
		out = append(out, sn)
	}
	return q, out, rows.Err()
}
