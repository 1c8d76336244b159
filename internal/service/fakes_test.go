package service

import (
	"io"
	"sort"

	"github.com/Faizansait10/portfolio-advisor/internal/integrations/predictor"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	users   []models.User
	nextID  int64
	findErr error
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.nextID++
	u.ID = f.nextID
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) FindByID(id int64) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
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

func (f *fakeUserRepo) Update(u *models.User) (bool, error) {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Delete(id int64) (bool, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileRepo struct {
	profiles  []models.UserRiskProfile
	nextID    int64
	createErr error
}

func (f *fakeProfileRepo) Create(p *models.UserRiskProfile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	p.ID = f.nextID
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *fakeProfileRepo) FindByID(id int64) (*models.UserRiskProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

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

func (f *fakeProfileRepo) Update(p *models.UserRiskProfile) (bool, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == p.ID {
			f.profiles[i] = *p
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileRepo) Delete(id int64) (bool, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			f.profiles = append(f.profiles[:i], f.profiles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeAllocationRepo struct {
	allocations []models.PortfolioAllocation
	nextID      int64
	createErr   error
}

func (f *fakeAllocationRepo) Create(a *models.PortfolioAllocation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	f.allocations = append(f.allocations, *a)
	return nil
}

func (f *fakeAllocationRepo) FindByID(id int64) (*models.PortfolioAllocation, error) {
	for _, a := range f.allocations {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
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

func (f *fakeAllocationRepo) Delete(id int64) (bool, error) {
	for i := range f.allocations {
		if f.allocations[i].ID == id {
			f.allocations = append(f.allocations[:i], f.allocations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

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

func (f *fakeProductRepo) Update(p *models.FinancialProduct) (bool, error) {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Delete(id int64) (bool, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakePredictor struct {
	result *predictor.Result
	err    error
	last   *predictor.Request
}

func (f *fakePredictor) Predict(req predictor.Request) (*predictor.Result, error) {
	f.last = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
