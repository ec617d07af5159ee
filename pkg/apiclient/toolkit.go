package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// Typed views of the API payloads used by the convenience helpers.

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type AuditResult struct {
	Score                 int    `json:"score"`
	Description           string `json:"description"`
	MentorshipRecommended bool   `json:"mentorship_recommended"`
}

type ScoreResult struct {
	AssessmentID   string  `json:"assessment_id"`
	Score          int     `json:"score"`
	MaxScore       int     `json:"max_score"`
	Average        float64 `json:"average"`
	Interpretation string  `json:"interpretation"`
	Guidance       string  `json:"guidance"`
}

type Assessment struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Questions    []string `json:"questions"`
	ScoringLogic string   `json:"scoring_logic"`
}

type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

type Integration struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Login obtains and stores a token pair for subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var pair TokenPair
	err := c.Do(ctx, http.MethodPost, "/api/token",
		map[string]string{"username": username, "password": password}, &pair, Options{})
	if err != nil {
		return err
	}
	c.session.Set(pair.AccessToken, pair.RefreshToken)
	return nil
}

// Logout drops the stored tokens.
func (c *Client) Logout() { c.session.Clear() }

func (c *Client) SubmitIntent(ctx context.Context, statement string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.Do(ctx, http.MethodPost, "/api/intent",
		map[string]string{"statement": statement}, &out, Options{})
	return out.Message, err
}

func (c *Client) ScoreAudit(ctx context.Context, responses []int) (AuditResult, error) {
	var out AuditResult
	err := c.Do(ctx, http.MethodPost, "/api/audit", responses, &out, Options{})
	return out, err
}

func (c *Client) ListAssessments(ctx context.Context) ([]Assessment, error) {
	var out struct {
		Assessments []Assessment `json:"assessments"`
	}
	err := c.Do(ctx, http.MethodGet, "/api/assessments", nil, &out, Options{})
	return out.Assessments, err
}

func (c *Client) ScoreAssessment(ctx context.Context, assessmentID string, responses []int) (ScoreResult, error) {
	var out ScoreResult
	err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/assessments/%s/score", assessmentID),
		map[string]any{"responses": responses}, &out, Options{})
	return out, err
}

// RecordScore saves a computed score server-side; requires a login.
func (c *Client) RecordScore(ctx context.Context, assessmentID string, score int) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.Do(ctx, http.MethodPost, "/api/assessments/score",
		map[string]any{"assessment_id": assessmentID, "score": score}, &out,
		Options{Auth: true, RetryOnUnauthorized: true})
	return out.Message, err
}

func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	var out struct {
		Resources []Resource `json:"resources"`
	}
	err := c.Do(ctx, http.MethodGet, "/api/resources", nil, &out, Options{})
	return out.Resources, err
}

func (c *Client) ListIntegrations(ctx context.Context) ([]Integration, error) {
	var out struct {
		Integrations []Integration `json:"integrations"`
	}
	err := c.Do(ctx, http.MethodGet, "/api/integrations", nil, &out, Options{})
	return out.Integrations, err
}

// QueueReminder schedules a background reminder; requires a login.
func (c *Client) QueueReminder(ctx context.Context, journeyID int64, reminderType string) (taskID string, err error) {
	var out struct {
		TaskID string `json:"task_id"`
	}
	err = c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/reminders/%d", journeyID),
		map[string]string{"reminder_type": reminderType}, &out,
		Options{Auth: true, RetryOnUnauthorized: true})
	return out.TaskID, err
}
