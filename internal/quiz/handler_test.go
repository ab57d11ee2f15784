package quiz_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizzly-backend/internal/quiz"
)

func newTestServer(t *testing.T) (*httptest.Server, quiz.QuizRepository) {
	t.Helper()

	db := openTestDB(t)
	repo := quiz.NewRepository(db)
	service := quiz.NewService(repo, &stubGenerator{repo: repo})
	handler := quiz.NewHandler(service)

	srv := httptest.NewServer(quiz.Routes(handler))
	t.Cleanup(srv.Close)
	return srv, repo
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/generate", map[string]string{"topic": "Python"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var body quiz.GenerateResponse
		decodeBody(t, resp, &body)
		if body.SessionID == 0 {
			t.Error("expected a session id")
		}
		if body.TotalQuestions != quiz.TotalQuestions {
			t.Errorf("total_questions = %d, want %d", body.TotalQuestions, quiz.TotalQuestions)
		}
	})

	t.Run("MissingTopic", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/generate", map[string]string{})
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
	})
}

func TestNextEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	sessionID := seedGeneratedQuiz(t, repo, "Python")

	t.Run("ReturnsFirstQuestion", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/next?session_id=%d", srv.URL, sessionID))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var body quiz.QuestionResponse
		decodeBody(t, resp, &body)
		if body.CurrentNumber != 1 {
			t.Errorf("current_number = %d, want 1", body.CurrentNumber)
		}
		if len(body.Choices) != 4 {
			t.Errorf("choices = %d, want 4", len(body.Choices))
		}
	})

	t.Run("UnknownSessionIs404", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/next?session_id=9999")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("MissingParamIs400", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/next")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
	})
}

func TestSubmitEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	sessionID := seedGeneratedQuiz(t, repo, "Python")

	var question quiz.QuestionResponse
	resp, err := http.Get(fmt.Sprintf("%s/next?session_id=%d", srv.URL, sessionID))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	decodeBody(t, resp, &question)

	t.Run("UnknownChoiceIs404", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/submit", quiz.SubmitRequest{
			SessionID:  sessionID,
			QuestionID: question.ID,
			ChoiceID:   9999,
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("AcceptsAnswer", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/submit", quiz.SubmitRequest{
			SessionID:  sessionID,
			QuestionID: question.ID,
			ChoiceID:   question.Choices[0].ID,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var body quiz.SubmitResponse
		decodeBody(t, resp, &body)
		if !body.NextQuestionAvailable {
			t.Error("one answer in, more questions should be available")
		}
	})
}

func TestFinalizeEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	sessionID := seedGeneratedQuiz(t, repo, "Python")

	t.Run("InvalidEmailIs400", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/finalize", quiz.FinalizeRequest{
			SessionID: sessionID,
			UserName:  "Ada",
			UserEmail: "not-an-email",
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
	})

	t.Run("ReturnsResult", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/finalize", quiz.FinalizeRequest{
			SessionID: sessionID,
			UserName:  "Ada",
			UserEmail: "ada@example.com",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var body quiz.ResultResponse
		decodeBody(t, resp, &body)
		if body.Score != 0 || body.Percentage != 0 {
			t.Errorf("fresh session should finalize with score 0, got %d (%v%%)", body.Score, body.Percentage)
		}
		if body.TotalQuestions != quiz.TotalQuestions {
			t.Errorf("total_questions = %d, want %d", body.TotalQuestions, quiz.TotalQuestions)
		}
	})

	t.Run("UnknownSessionIs404", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/finalize", quiz.FinalizeRequest{
			SessionID: 9999,
			UserName:  "Ada",
			UserEmail: "ada@example.com",
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})
}
