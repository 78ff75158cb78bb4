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
	domainInvestment "ideafund-backend/internal/domain/investment"
	domainProfile "ideafund-backend/internal/domain/profile"
	"ideafund-backend/internal/domain/uow"
	"ideafund-backend/internal/testutil/investmentmock"
	"ideafund-backend/internal/testutil/notificationmock"
	"ideafund-backend/internal/testutil/profilemock"
	"ideafund-backend/internal/testutil/uowmock"
	uc "ideafund-backend/internal/usecase/investment"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	testInvestorID = "11111111111111111111111111111111"
	testIdeaID     = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func investorProfiles() *profilemock.Repo {
	return &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainProfile.Profile, error) {
			return &domainProfile.Profile{UserID: userID, Role: domainProfile.RoleInvestor}, nil
		},
	}
}

func investUoW(status domainIdea.Status) *uowmock.UoW {
	row := &domainIdea.Idea{ID: 7, IdeaID: testIdeaID, FounderID: "22222222222222222222222222222222", Title: "Solar microgrids", Status: status}
	repos := uow.Repos{
		Investments: &investmentmock.Repo{
			SumSuccessfulByIdeaIDFn: func(ctx context.Context, ideaID uint64) (float64, error) {
				return 30_000, nil
			},
		},
		Notifications: &notificationmock.Repo{},
	}
	return &uowmock.UoW{
		WithinIdeaTxFn: func(ctx context.Context, ideaID string, fn func(r uow.Repos, i *domainIdea.Idea) error) error {
			if ideaID != row.IdeaID {
				return gorm.ErrRecordNotFound
			}
			return fn(repos, row)
		},
	}
}

func TestCreateInvestment_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(investorProfiles(), investUoW(domainIdea.StatusLive)))

	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas/"+testIdeaID+"/investments", mustJSON(map[string]any{"amount": 30000}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testInvestorID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idea_id")
	c.SetParamValues(testIdeaID)

	if err := authed(h.CreateInvestment)(c); err != nil {
		t.Fatalf("CreateInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var got uc.InvestmentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.InvestorID != testInvestorID || got.Amount != 30_000 {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.PaymentStatus != string(domainInvestment.StatusSuccess) {
		t.Fatalf("payment_status = %s", got.PaymentStatus)
	}
}

func TestCreateInvestment_MissingUserHeader(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(investorProfiles(), investUoW(domainIdea.StatusLive)))

	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas/"+testIdeaID+"/investments", mustJSON(map[string]any{"amount": 100}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := authed(h.CreateInvestment)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateInvestment_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(investorProfiles(), investUoW(domainIdea.StatusLive)))

	// amount with 3 decimal places and not positive
	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas/"+testIdeaID+"/investments", mustJSON(map[string]any{"amount": -0.001}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testInvestorID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idea_id")
	c.SetParamValues(testIdeaID)

	if err := authed(h.CreateInvestment)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation failed" {
		t.Fatalf("error = %q", er.Error)
	}
	if !containsFieldMsg(er.Details, "Amount", "greater than 0") {
		t.Fatalf("missing gt detail: %+v", er.Details)
	}
}

func TestCreateInvestment_ClosedIdeaConflict(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(investorProfiles(), investUoW(domainIdea.StatusClosed)))

	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas/"+testIdeaID+"/investments", mustJSON(map[string]any{"amount": 100}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testInvestorID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idea_id")
	c.SetParamValues(testIdeaID)

	if err := authed(h.CreateInvestment)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateInvestment_UnknownIdea(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(investorProfiles(), investUoW(domainIdea.StatusLive)))

	const unknown = "ffffffffffffffffffffffffffffffff"
	req := httptest.NewRequest(stdhttp.MethodPost, "/ideas/"+unknown+"/investments", mustJSON(map[string]any{"amount": 100}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testInvestorID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idea_id")
	c.SetParamValues(unknown)

	if err := authed(h.CreateInvestment)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestWithdrawInvestment_ForeignInvestmentForbidden(t *testing.T) {
	e := newEchoWithValidator()

	const invID = "dddddddddddddddddddddddddddddddd"
	tx := &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{
				Investments: &investmentmock.Repo{
					GetByInvestmentIDForUpdateFn: func(ctx context.Context, investmentID string) (*domainInvestment.Investment, error) {
						return &domainInvestment.Investment{
							InvestmentID: invID, IdeaID: 7,
							InvestorID:    "99999999999999999999999999999999",
							Amount:        5_000,
							PaymentStatus: domainInvestment.StatusSuccess,
						}, nil
					},
				},
			})
		},
	}
	h := NewInvestmentHandler(uc.NewUsecase(investorProfiles(), tx))

	req := httptest.NewRequest(stdhttp.MethodDelete, "/investments/"+invID, nil)
	req.Header.Set(middleware.HeaderUserID, testInvestorID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("investment_id")
	c.SetParamValues(invID)

	if err := authed(h.WithdrawInvestment)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403: %s", rec.Code, rec.Body.String())
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !strings.Contains(er.Error, "another investor") {
		t.Fatalf("error = %q", er.Error)
	}
}
