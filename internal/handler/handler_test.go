package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/config"
	"github.com/Faizansait10/portfolio-advisor/internal/integrations/predictor"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/Faizansait10/portfolio-advisor/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  []models.User
	nextID int64
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.nextID++
	u.ID = f.nextID
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) FindByID(id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll() ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Update(u *models.User) (bool, error) { return false, nil }
func (f *fakeUserRepo) Delete(id int64) (bool, error)       { return false, nil }

type fakeProfileRepo struct {
	profiles []models.UserRiskProfile
	nextID   int64
}

func (f *fakeProfileRepo) Create(p *models.UserRiskProfile) error {
	f.nextID++
	p.ID = f.nextID
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *fakeProfileRepo) FindByID(id int64) (*models.UserRiskProfile, error) { return nil, nil }

func (f *fakeProfileRepo) FindLatestByUser(userID int64) (*models.UserRiskProfile, error) {
	all, _ := f.FindAllByUser(userID)
	if len(all) == 0 {
		return nil, nil
	}
	p := all[0]
	return &p, nil
}

func (f *fakeProfileRepo) FindAllByUser(userID int64) ([]models.UserRiskProfile, error) {
	var out []models.UserRiskProfile
	for _, p := range f.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PredictionDate.After(out[j].PredictionDate)
	})
	return out, nil
}

func (f *fakeProfileRepo) Update(p *models.UserRiskProfile) (bool, error) { return false, nil }
func (f *fakeProfileRepo) Delete(id int64) (bool, error)                  { return false, nil }

type fakeAllocationRepo struct {
	allocations []models.PortfolioAllocation
	nextID      int64
}

func (f *fakeAllocationRepo) Create(a *models.PortfolioAllocation) error {
	f.nextID++
	a.ID = f.nextID
	f.allocations = append(f.allocations, *a)
	return nil
}

func (f *fakeAllocationRepo) FindByID(id int64) (*models.PortfolioAllocation, error) {
	return nil, nil
}

func (f *fakeAllocationRepo) FindAllByUser(userID int64) ([]models.PortfolioAllocation, error) {
	var out []models.PortfolioAllocation
	for _, a := range f.allocations {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecommendationDate.After(out[j].RecommendationDate)
	})
	return out, nil
}

func (f *fakeAllocationRepo) Delete(id int64) (bool, error) { return false, nil }

type fakeProductRepo struct {
	products []models.FinancialProduct
	nextID   int64
}

func (f *fakeProductRepo) Create(p *models.FinancialProduct) error {
	f.nextID++
	p.ID = f.nextID
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) FindByID(id int64) (*models.FinancialProduct, error) {
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll() ([]models.FinancialProduct, error) {
	return append([]models.FinancialProduct(nil), f.products...), nil
}

func (f *fakeProductRepo) Update(p *models.FinancialProduct) (bool, error) { return false, nil }
func (f *fakeProductRepo) Delete(id int64) (bool, error)                   { return false, nil }

type fakePredictor struct {
	result *predictor.Result
	err    error
}

func (f *fakePredictor) Predict(req predictor.Request) (*predictor.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type testEnv struct {
	handler     *Handler
	users       *fakeUserRepo
	profiles    *fakeProfileRepo
	allocations *fakeAllocationRepo
	predictor   *fakePredictor
}

func newTestEnv() *testEnv {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret"}

	users := &fakeUserRepo{}
	profiles := &fakeProfileRepo{}
	allocations := &fakeAllocationRepo{}
	pred := &fakePredictor{result: &predictor.Result{PredictedRiskCategory: "Moderate", ConfidenceScore: 0.87}}

	userSvc := service.NewUserService(users, nil, log)
	advisorSvc := service.NewAdvisorService(profiles, allocations, pred, log)
	productSvc := service.NewProductService(&fakeProductRepo{}, log)

	return &testEnv{
		handler:     NewHandler(userSvc, advisorSvc, productSvc, nil, cfg, log),
		users:       users,
		profiles:    profiles,
		allocations: allocations,
		predictor:   pred,
	}
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(req *http.Request, id string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), "userID", id))
}

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.handler.Register(w, jsonRequest("POST", "/register", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "a@x.com", created.Email)

	// Duplicate email is rejected with the registration-specific message.
	w = httptest.NewRecorder()
	env.handler.Register(w, jsonRequest("POST", "/register", map[string]string{
		"name": "Bob", "email": "a@x.com", "password": "secret2",
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errBody map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errBody))
	assert.Equal(t, "User with this email already exists.", errBody["error"])

	w = httptest.NewRecorder()
	env.handler.Login(w, jsonRequest("POST", "/login", map[string]string{
		"email": "a@x.com", "password": "secret1",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	var login loginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "a@x.com", login.User.Email)

	w = httptest.NewRecorder()
	env.handler.Login(w, jsonRequest("POST", "/login", map[string]string{
		"email": "a@x.com", "password": "wrong",
	}))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errBody))
	assert.Equal(t, "Invalid email or password.", errBody["error"])
}

func TestCreateRecommendation(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.users.Create(&models.User{Name: "Alice", Email: "a@x.com", Password: "secret1"}))

	req := asUser(jsonRequest("POST", "/advisor/recommendations", map[string]any{
		"age": 31, "income_lakhs": 12.5, "investment_experience_years": 4, "financial_goal": "Retirement",
	}), "1")
	w := httptest.NewRecorder()
	env.handler.CreateRecommendation(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp recommendationResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Moderate", resp.Profile.PredictedRiskCategory)
	assert.Equal(t, 0.50, resp.Allocation.EquityPct)
	assert.Equal(t, 0.40, resp.Allocation.DebtPct)
	assert.Equal(t, 0.10, resp.Allocation.AlternativePct)

	// Both steps persisted.
	assert.Len(t, env.profiles.profiles, 1)
	assert.Len(t, env.allocations.allocations, 1)
}

func TestCreateRecommendation_PredictionFailure(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.users.Create(&models.User{Name: "Alice", Email: "a@x.com", Password: "secret1"}))
	env.predictor.result = nil
	env.predictor.err = apperrors.Prediction("ML service returned an error. Status code: 500")

	req := asUser(jsonRequest("POST", "/advisor/recommendations", map[string]any{"age": 31}), "1")
	w := httptest.NewRecorder()
	env.handler.CreateRecommendation(w, req)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	assert.Empty(t, env.profiles.profiles)
	assert.Empty(t, env.allocations.allocations)
}

func TestAdvisorEndpoints_RequireIdentity(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.handler.GetRecommendationHistory(w, httptest.NewRequest("GET", "/advisor/recommendations", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetLatestProfile_NoneYet(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.users.Create(&models.User{Name: "Alice", Email: "a@x.com", Password: "secret1"}))

	w := httptest.NewRecorder()
	env.handler.GetLatestProfile(w, asUser(httptest.NewRequest("GET", "/advisor/profile", nil), "1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecommendationHistory_Empty(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.users.Create(&models.User{Name: "Alice", Email: "a@x.com", Password: "secret1"}))

	w := httptest.NewRecorder()
	env.handler.GetRecommendationHistory(w, asUser(httptest.NewRequest("GET", "/advisor/recommendations", nil), "1"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv()

	req := mux.SetURLVars(httptest.NewRequest("GET", "/products/99", nil), map[string]string{"id": "99"})
	w := httptest.NewRecorder()
	env.handler.GetProduct(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = mux.SetURLVars(httptest.NewRequest("GET", "/products/abc", nil), map[string]string{"id": "abc"})
	w = httptest.NewRecorder()
	env.handler.GetProduct(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
