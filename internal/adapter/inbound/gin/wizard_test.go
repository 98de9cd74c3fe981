package gin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/washdesk/server/internal/domain/pricing"
	"github.com/washdesk/server/internal/domain/wizard"
	"github.com/washdesk/server/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockWizardDomain is a mock implementation of wizard.WizardDomain.
type MockWizardDomain struct {
	mock.Mock
}

func (m *MockWizardDomain) SaveDraft(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) error {
	args := m.Called(ctx, userID, draft)
	return args.Error(0)
}

func (m *MockWizardDomain) LoadDraft(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (*model.WizardDraft, error) {
	args := m.Called(ctx, userID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WizardDraft), args.Error(1)
}

func (m *MockWizardDomain) ClearDraft(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockWizardDomain) Advance(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) (*wizard.ValidationResult, *model.WizardDraft, error) {
	args := m.Called(ctx, userID, draft)
	var result *wizard.ValidationResult
	if args.Get(0) != nil {
		result = args.Get(0).(*wizard.ValidationResult)
	}
	var updated *model.WizardDraft
	if args.Get(1) != nil {
		updated = args.Get(1).(*model.WizardDraft)
	}
	return result, updated, args.Error(2)
}

func (m *MockWizardDomain) Back(draft *model.WizardDraft) *model.WizardDraft {
	args := m.Called(draft)
	return args.Get(0).(*model.WizardDraft)
}

func (m *MockWizardDomain) ApplyDerived(ctx context.Context, draft *model.WizardDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockWizardDomain) Quote(ctx context.Context, draft *model.WizardDraft) (*pricing.Totals, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Totals), args.Error(1)
}

func newWizardRouter(wiz *MockWizardDomain) *gin.Engine {
	router := gin.New()
	handler := NewWizardHandler(wiz)
	router.GET("/wizard/draft", handler.GetDraft)
	router.PUT("/wizard/draft", handler.SaveDraft)
	router.DELETE("/wizard/draft", handler.ClearDraft)
	router.POST("/wizard/draft/advance", handler.Advance)
	router.POST("/wizard/draft/back", handler.Back)
	router.POST("/wizard/quote", handler.Quote)
	return router
}

func doRequest(router *gin.Engine, method, path string, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWizardHandler_GetDraft(t *testing.T) {
	userID := uuid.New()

	t.Run("missing user header", func(t *testing.T) {
		router := newWizardRouter(new(MockWizardDomain))
		w := doRequest(router, http.MethodGet, "/wizard/draft", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no draft", func(t *testing.T) {
		wiz := new(MockWizardDomain)
		wiz.On("LoadDraft", mock.Anything, userID, (*uuid.UUID)(nil)).Return(nil, nil)
		router := newWizardRouter(wiz)

		w := doRequest(router, http.MethodGet, "/wizard/draft", userID.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"draft":null}`, w.Body.String())
	})

	t.Run("draft conflict returns 409 with draft", func(t *testing.T) {
		wiz := new(MockWizardDomain)
		draft := &model.WizardDraft{CurrentStep: 2}
		wiz.On("LoadDraft", mock.Anything, userID, mock.Anything).Return(draft, wizard.ErrDraftConflict)
		router := newWizardRouter(wiz)

		otherCustomer := uuid.New()
		w := doRequest(router, http.MethodGet, "/wizard/draft?customer_id="+otherCustomer.String(), userID.String(), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"draft"`)
	})

	t.Run("invalid customer_id", func(t *testing.T) {
		router := newWizardRouter(new(MockWizardDomain))
		w := doRequest(router, http.MethodGet, "/wizard/draft?customer_id=nope", userID.String(), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWizardHandler_Advance(t *testing.T) {
	userID := uuid.New()

	t.Run("validation failure returns 422 with field map", func(t *testing.T) {
		wiz := new(MockWizardDomain)
		result := &wizard.ValidationResult{Valid: false, Errors: map[string]string{"customer": "select a customer"}}
		wiz.On("Advance", mock.Anything, userID, mock.Anything).Return(result, &model.WizardDraft{CurrentStep: 1}, nil)
		router := newWizardRouter(wiz)

		w := doRequest(router, http.MethodPost, "/wizard/draft/advance", userID.String(), model.WizardDraft{CurrentStep: 1})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "select a customer")
	})

	t.Run("success returns advanced draft", func(t *testing.T) {
		wiz := new(MockWizardDomain)
		result := &wizard.ValidationResult{Valid: true}
		wiz.On("Advance", mock.Anything, userID, mock.Anything).Return(result, &model.WizardDraft{CurrentStep: 2}, nil)
		router := newWizardRouter(wiz)

		w := doRequest(router, http.MethodPost, "/wizard/draft/advance", userID.String(), model.WizardDraft{CurrentStep: 1})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"current_step":2`)
	})
}

func TestWizardHandler_Back(t *testing.T) {
	userID := uuid.New()
	wiz := new(MockWizardDomain)
	wiz.On("Back", mock.Anything).Return(&model.WizardDraft{CurrentStep: 1})
	router := newWizardRouter(wiz)

	w := doRequest(router, http.MethodPost, "/wizard/draft/back", userID.String(), model.WizardDraft{CurrentStep: 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current_step":1`)
}

func TestWizardHandler_ClearDraft(t *testing.T) {
	userID := uuid.New()
	wiz := new(MockWizardDomain)
	wiz.On("ClearDraft", mock.Anything, userID).Return(nil)
	router := newWizardRouter(wiz)

	w := doRequest(router, http.MethodDelete, "/wizard/draft", userID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	wiz.AssertExpectations(t)
}

func TestWizardHandler_Quote(t *testing.T) {
	userID := uuid.New()
	wiz := new(MockWizardDomain)
	totals := &pricing.Totals{Subtotal: 50000, GST: 9000, GSTPercentage: 18.0, Total: 59000}
	wiz.On("Quote", mock.Anything, mock.Anything).Return(totals, nil)
	router := newWizardRouter(wiz)

	w := doRequest(router, http.MethodPost, "/wizard/quote", userID.String(), model.WizardDraft{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":59000`)
}
