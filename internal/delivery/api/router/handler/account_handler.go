// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/delivery/api/response"
	"creatorhub/internal/domain/entity"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = time.DateOnly

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
	AccountUC    usecase.AccountUsecase
	Logger       *slog.Logger
}

// AccountHandler serves the authenticated account's own resources.
type AccountHandler struct {
	onboardingUC usecase.OnboardingUsecase
	accountUC    usecase.AccountUsecase
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		onboardingUC: params.OnboardingUC,
		accountUC:    params.AccountUC,
		logger:       params.Logger,
	}
}

// CompleteOnboardingRequest is the onboarding payload. Which fields are required
// depends on the account kind, so only their shape is checked here.
type CompleteOnboardingRequest struct {
	Description    *string           `json:"description" validate:"omitempty,max=2000"`
	UserName       *string           `json:"userName" validate:"omitempty,max=100"`
	ContentType    *string           `json:"contentType" validate:"omitempty,max=100"`
	BirthDate      *string           `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	SocialNetworks map[string]string `json:"socialNetworks" validate:"omitempty,max=16"`
}

// toInput converts the request into the use case input. The date layout has
// already been checked by the validator.
func (r *CompleteOnboardingRequest) toInput() (*usecase.CompleteOnboardingInput, error) {
	input := &usecase.CompleteOnboardingInput{
		Description:    r.Description,
		UserName:       r.UserName,
		ContentType:    r.ContentType,
		SocialNetworks: r.SocialNetworks,
	}

	if r.BirthDate != nil && *r.BirthDate != "" {
		birthDate, err := time.Parse(dateLayout, *r.BirthDate)
		if err != nil {
			return nil, err
		}
		input.BirthDate = &birthDate
	}

	return input, nil
}

// OnboardingResponse is the onboarded account plus the ID of the created profile.
type OnboardingResponse struct {
	*AccountResponse
	CreatorID    *int64 `json:"creatorId,omitempty"`
	AdvertiserID *int64 `json:"advertiserId,omitempty"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID                  int64                      `json:"id"`
	Name                string                     `json:"name"`
	Email               string                     `json:"email"`
	Kind                string                     `json:"kind"`
	Description         string                     `json:"description"`
	OnboardingCompleted bool                       `json:"onboardingCompleted"`
	CreatorProfile      *CreatorProfileResponse    `json:"creatorProfile,omitempty"`
	AdvertiserProfile   *AdvertiserProfileResponse `json:"advertiserProfile,omitempty"`
}

// CreatorProfileResponse is the public view of a creator profile.
type CreatorProfileResponse struct {
	ID            int64  `json:"id"`
	Description   string `json:"description"`
	UserName      string `json:"userName"`
	ContentType   string `json:"contentType"`
	BirthDate     string `json:"birthDate"`
	YoutubeLinked bool   `json:"youtubeLinked"`
}

// AdvertiserProfileResponse is the public view of an advertiser profile.
type AdvertiserProfileResponse struct {
	ID             int64             `json:"id"`
	Description    string            `json:"description"`
	UserName       string            `json:"userName"`
	ContentType    string            `json:"contentType"`
	SocialNetworks map[string]string `json:"socialNetworks"`
}

func newAccountResponse(account *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:                  account.ID,
		Name:                account.Name,
		Email:               account.Email,
		Kind:                account.Kind.String(),
		Description:         account.Description,
		OnboardingCompleted: account.OnboardingCompleted,
	}

	if p := account.CreatorProfile; p != nil {
		resp.CreatorProfile = &CreatorProfileResponse{
			ID:            p.ID,
			Description:   p.Description,
			UserName:      p.UserName,
			ContentType:   p.ContentType,
			BirthDate:     p.BirthDate.Format(dateLayout),
			YoutubeLinked: p.YoutubeLinked,
		}
	}
	if p := account.AdvertiserProfile; p != nil {
		resp.AdvertiserProfile = &AdvertiserProfileResponse{
			ID:             p.ID,
			Description:    p.Description,
			UserName:       p.UserName,
			ContentType:    p.ContentType,
			SocialNetworks: p.SocialNetworks,
		}
	}

	return resp
}

// CompleteOnboarding handles the one-time onboarding of the authenticated account.
func (h *AccountHandler) CompleteOnboarding(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req CompleteOnboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "birthDate must match the layout 2006-01-02")
	}

	result, err := h.onboardingUC.CompleteOnboarding(c.Request().Context(), accountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &OnboardingResponse{
		AccountResponse: newAccountResponse(result.Account),
		CreatorID:       result.CreatorID,
		AdvertiserID:    result.AdvertiserID,
	})
}

// GetAccount returns the authenticated account with its profile.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}
