package view

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	coregame "wordsolver/internal/core/game"
	"wordsolver/internal/core/solver"
)

type fakeGameService struct {
	result     coregame.SolveResult
	err        error
	lastSolved solver.Constraints
}

func (f *fakeGameService) Solve(ctx context.Context, c solver.Constraints) (coregame.SolveResult, error) {
	f.lastSolved = c
	if f.err != nil {
		return coregame.SolveResult{}, f.err
	}
	return f.result, nil
}

func TestGetAnswersRendersCard(t *testing.T) {
	gameSvc := &fakeGameService{
		result: coregame.SolveResult{Words: []string{"cat", "cot"}},
	}
	h := NewRequestHandler(gameSvc)

	req := httptest.NewRequest(http.MethodGet, "/answers?exact=c_t&incorrect=xz", nil)
	rec := httptest.NewRecorder()
	h.GetAnswers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html content type, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Possible Answers:") {
		t.Fatalf("expected header in body, got %q", body)
	}
	if got := strings.Count(body, `<li class="word-row">`); got != 2 {
		t.Fatalf("expected 2 word rows, got %d", got)
	}
	if gameSvc.lastSolved.Exact != "c_t" || gameSvc.lastSolved.Incorrect != "xz" {
		t.Fatalf("unexpected constraints: %+v", gameSvc.lastSolved)
	}
}

func TestGetAnswersRendersEmptyCard(t *testing.T) {
	h := NewRequestHandler(&fakeGameService{})

	req := httptest.NewRequest(http.MethodGet, "/answers", nil)
	rec := httptest.NewRecorder()
	h.GetAnswers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Possible Answers:") {
		t.Fatalf("expected header in body, got %q", body)
	}
	if strings.Contains(body, `<li class="word-row">`) {
		t.Fatalf("expected zero word rows, got %q", body)
	}
}

func TestGetAnswersRejectsInvalidConstraints(t *testing.T) {
	gameSvc := &fakeGameService{err: fmt.Errorf("%w: exact contains '4'", coregame.ErrInvalidConstraints)}
	h := NewRequestHandler(gameSvc)

	req := httptest.NewRequest(http.MethodGet, "/answers?exact=c4t", nil)
	rec := httptest.NewRecorder()
	h.GetAnswers(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected json content type, got %q", ct)
	}
}
