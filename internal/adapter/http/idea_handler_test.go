package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ideafund-backend/internal/adapter/middleware"
	domainIdea "ideafund-backend/internal/domain/idea"
	domainProfile "ideafund-backend/internal/domain/profile"
	domainVote "ideafund-backend/internal/domain/vote"
	"ideafund-backend/internal/testutil/ideamock"
	"ideafund-backend/internal/testutil/investmentmock"
	"ideafund-backend/internal/testutil/profilemock"
	"ideafund-backend/internal/testutil/uowmock"
	"ideafund-backend/internal/testutil/votemock"
	uc "ideafund-backend/internal/usecase/idea"

	"github.com/labstack/echo/v4"
)

const testFounderID = "22222222222222222222222222222222"

func founderProfileRepo() *profilemock.Repo {
	return &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainProfile.Profile, error) {
			return &domainProfile.Profile{UserID: userID, Role: domainProfile.RoleFounder}, nil
		},
	}
}

func TestCreateIdea_Success(t *testing.T) {
	e := newEchoWithValidator()
	ideas := &ideamock.Repo{}
	h := NewIdeaHandler(uc.NewUsecase(ideas, &investmentmock.Repo{}, &votemock.Repo{}, founderProfileRepo(), uowmock.New()))

	reqBody := map[string]any{
		"title":        "Solar microgrids",
		"description":  "Village scale storage",
		"industry":     "energy",
		"stage":        "mvp",
		"funding_goal": 250000,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testFounderID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := authed(h.CreateIdea)(c); err != nil {
		t.Fatalf("CreateIdea error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var got uc.IdeaDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.FounderID != testFounderID || got.Status != string(domainIdea.StatusReview) {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestCreateIdea_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewIdeaHandler(uc.NewUsecase(&ideamock.Repo{}, &investmentmock.Repo{}, &votemock.Repo{}, founderProfileRepo(), uowmock.New()))

	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas", strings.NewReader(`{"title":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testFounderID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := authed(h.CreateIdea)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestCreateIdea_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewIdeaHandler(uc.NewUsecase(&ideamock.Repo{}, &investmentmock.Repo{}, &votemock.Repo{}, founderProfileRepo(), uowmock.New()))

	reqBody := map[string]any{
		"title":        "",
		"industry":     "",
		"stage":        "unicorn",
		"funding_goal": -100,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testFounderID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := authed(h.CreateIdea)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(er.Details, "Title", "is required") {
		t.Fatalf("missing required detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "Stage", "must be one of") {
		t.Fatalf("missing oneof detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "FundingGoal", "greater than or equal to 0") {
		t.Fatalf("missing gte detail: %+v", er.Details)
	}
}

func TestCreateIdea_NonFounderForbidden(t *testing.T) {
	e := newEchoWithValidator()
	profiles := &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainProfile.Profile, error) {
			return &domainProfile.Profile{UserID: userID, Role: domainProfile.RoleInvestor}, nil
		},
	}
	h := NewIdeaHandler(uc.NewUsecase(&ideamock.Repo{}, &investmentmock.Repo{}, &votemock.Repo{}, profiles, uowmock.New()))

	reqBody := map[string]any{"title": "x", "industry": "energy"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testInvestorID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := authed(h.CreateIdea)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403: %s", rec.Code, rec.Body.String())
	}
}

func TestGetIdea_Success(t *testing.T) {
	e := echo.New()
	ideas := &ideamock.Repo{
		GetByIdeaIDFn: func(ctx context.Context, ideaID string) (*domainIdea.Idea, error) {
			return &domainIdea.Idea{ID: 7, IdeaID: ideaID, FounderID: testFounderID, Title: "Solar microgrids", Status: domainIdea.StatusLive}, nil
		},
	}
	investments := &investmentmock.Repo{
		SumSuccessfulByIdeaIDFn: func(ctx context.Context, ideaID uint64) (float64, error) { return 12_000, nil },
	}
	votes := &votemock.Repo{
		CountByIdeaIDFn: func(ctx context.Context, ideaID uint64) (domainVote.Counts, error) {
			return domainVote.Counts{Upvotes: 4, Downvotes: 1}, nil
		},
	}
	h := NewIdeaHandler(uc.NewUsecase(ideas, investments, votes, founderProfileRepo(), uowmock.New()))

	req := httptest.NewRequest(stdhttp.MethodGet, "/ideas/"+testIdeaID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idea_id")
	c.SetParamValues(testIdeaID)

	if err := h.GetIdea(c); err != nil {
		t.Fatalf("GetIdea error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dto uc.IdeaDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.TotalRaised != 12_000 || dto.Score != 3 {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestListIdeas_MineSwitchesToFounderScope(t *testing.T) {
	e := echo.New()
	var founderQueried string
	ideas := &ideamock.Repo{
		ListByFounderIDFn: func(ctx context.Context, founderID string) ([]domainIdea.Idea, error) {
			founderQueried = founderID
			return nil, nil
		},
		ListLiveFn: func(ctx context.Context) ([]domainIdea.Idea, error) {
			t.Fatal("live feed must not be queried with ?mine=true")
			return nil, nil
		},
	}
	h := NewIdeaHandler(uc.NewUsecase(ideas, &investmentmock.Repo{}, &votemock.Repo{}, founderProfileRepo(), uowmock.New()))

	req := httptest.NewRequest(stdhttp.MethodGet, "/ideas?mine=true", nil)
	req.Header.Set(middleware.HeaderUserID, testFounderID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := authed(h.ListIdeas)(c); err != nil {
		t.Fatalf("ListIdeas error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if founderQueried != testFounderID {
		t.Fatalf("founder scope = %q", founderQueried)
	}
}
