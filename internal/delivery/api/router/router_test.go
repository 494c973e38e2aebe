package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creatorhub/config"
	apimiddleware "creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/delivery/api/router/handler"
	"creatorhub/internal/delivery/api/validator"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/errors"
	"creatorhub/internal/infra/metrics"
	mockService "creatorhub/internal/mocks/service"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type routerFixtures struct {
	echo         *echo.Echo
	onboardingUC *mockUsecase.MockOnboardingUsecase
	accountUC    *mockUsecase.MockAccountUsecase
	tokenSvc     *mockService.MockTokenService
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	onboardingUC := mockUsecase.NewMockOnboardingUsecase(t)
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			OnboardingUC: onboardingUC,
			AccountUC:    accountUC,
			Logger:       logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc, logger),
		Metrics:        metrics.New(metrics.NewRegistry()),
		Config:         cfg,
	})
	r.RegisterRoutes(e)

	return routerFixtures{
		echo:         e,
		onboardingUC: onboardingUC,
		accountUC:    accountUC,
		tokenSvc:     tokenSvc,
	}
}

func (fx routerFixtures) authenticateAs(accountID int64, kind entity.AccountKind) {
	fx.tokenSvc.EXPECT().ValidateToken(validToken).Return(&service.Claims{AccountID: accountID, Kind: kind, Type: "access"}, nil)
}

func (fx routerFixtures) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_CompleteOnboarding_Creator(t *testing.T) {
	fx := createTestRouter(t)
	fx.authenticateAs(1, entity.AccountKindCreator)

	creatorID := int64(10)
	fx.onboardingUC.EXPECT().
		CompleteOnboarding(mock.Anything, int64(1), mock.AnythingOfType("*usecase.CompleteOnboardingInput")).
		RunAndReturn(func(_ context.Context, _ int64, input *usecase.CompleteOnboardingInput) (*usecase.OnboardingResult, error) {
			require.NotNil(t, input.BirthDate)
			assert.True(t, input.BirthDate.Equal(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
			assert.Equal(t, "alice", *input.UserName)

			return &usecase.OnboardingResult{
				Account: &entity.Account{
					ID:                  1,
					Kind:                entity.AccountKindCreator,
					OnboardingCompleted: true,
					CreatorProfile:      &entity.CreatorProfile{ID: creatorID, AccountID: 1, UserName: "alice", BirthDate: *input.BirthDate, YoutubeLinked: true},
				},
				CreatorID: &creatorID,
			}, nil
		})

	rec := fx.do(http.MethodPost, "/api/v1/accounts/me/onboarding", `{"birthDate":"2000-01-01","userName":"alice"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, float64(1), env.Data["id"])
	assert.Equal(t, true, env.Data["onboardingCompleted"])
	assert.Equal(t, float64(10), env.Data["creatorId"])
	assert.NotContains(t, env.Data, "advertiserId")
}

func TestRouter_CompleteOnboarding_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed birth date",
			body:       `{"birthDate":"01/01/2000"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed json",
			body:       `{"birthDate":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "missing social networks",
			body:       `{}`,
			ucErr:      domainerrors.ErrValidationFailed.WrapMessage(entity.MsgAdvertiserSocialNetworksRequired),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "already onboarded",
			body:       `{"socialNetworks":{"instagram":"x"}}`,
			ucErr:      domainerrors.ErrAlreadyOnboarded.WrapMessage("account 2"),
			wantStatus: http.StatusConflict,
			wantCode:   "ALREADY_ONBOARDED",
		},
		{
			name:       "transaction failure",
			body:       `{"socialNetworks":{"instagram":"x"}}`,
			ucErr:      errors.Join(domainerrors.ErrTransactionFailed, errors.New("connection reset")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t)
			fx.authenticateAs(2, entity.AccountKindAdvertiser)
			if tt.ucErr != nil {
				fx.onboardingUC.EXPECT().CompleteOnboarding(mock.Anything, int64(2), mock.Anything).Return(nil, tt.ucErr)
			}

			rec := fx.do(http.MethodPost, "/api/v1/accounts/me/onboarding", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Empty(t, env.Error.Details)
			}
		})
	}
}

func TestRouter_ValidationDetailsNameTheField(t *testing.T) {
	fx := createTestRouter(t)
	fx.authenticateAs(2, entity.AccountKindAdvertiser)
	fx.onboardingUC.EXPECT().CompleteOnboarding(mock.Anything, int64(2), mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WrapMessage(entity.MsgAdvertiserSocialNetworksRequired))

	rec := fx.do(http.MethodPost, "/api/v1/accounts/me/onboarding", `{}`)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, entity.MsgAdvertiserSocialNetworksRequired)
}

func TestRouter_GetAccount(t *testing.T) {
	fx := createTestRouter(t)
	fx.authenticateAs(2, entity.AccountKindAdvertiser)
	fx.accountUC.EXPECT().GetAccount(mock.Anything, int64(2)).Return(&entity.Account{
		ID:                  2,
		Kind:                entity.AccountKindAdvertiser,
		OnboardingCompleted: true,
		AdvertiserProfile: &entity.AdvertiserProfile{
			ID:             20,
			AccountID:      2,
			SocialNetworks: entity.SocialNetworks{"instagram": "x"},
		},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/accounts/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	profile, ok := env.Data["advertiserProfile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"instagram": "x"}, profile["socialNetworks"])
}

func TestRouter_RejectsMissingOrInvalidToken(t *testing.T) {
	fx := createTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/me", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	fx.tokenSvc.EXPECT().ValidateToken(validToken).Return(nil, errors.New("token is expired"))
	rec = fx.do(http.MethodGet, "/api/v1/accounts/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	fx := createTestRouter(t)

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
