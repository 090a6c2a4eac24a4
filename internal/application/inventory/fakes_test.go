package inventory_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. El fakeTxRunner reproduce
// la semántica de Commit/Rollback: toma un snapshot del stock antes del
// callback y lo restaura si el callback o el commit fallan.

type fakeStockStore struct {
	entries []*entity.Stock
	// failUpsertFor simula un fallo de almacenamiento al escribir ese producto
	failUpsertFor map[string]bool
}

func newFakeStockStore() *fakeStockStore {
	return &fakeStockStore{failUpsertFor: make(map[string]bool)}
}

func (s *fakeStockStore) find(productID string, warehouseID int) *entity.Stock {
	for _, e := range s.entries {
		if e.ProductID == productID && e.WarehouseID == warehouseID {
			return e
		}
	}
	return nil
}

func (s *fakeStockStore) set(productID string, warehouseID, held int) {
	if e := s.find(productID, warehouseID); e != nil {
		e.Held = held
		return
	}
	s.entries = append(s.entries, &entity.Stock{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Held:        held,
		UpdatedAt:   time.Now(),
	})
}

func (s *fakeStockStore) snapshot() []*entity.Stock {
	copied := make([]*entity.Stock, 0, len(s.entries))
	for _, e := range s.entries {
		c := *e
		copied = append(copied, &c)
	}
	return copied
}

func (s *fakeStockStore) restore(snapshot []*entity.Stock) {
	s.entries = snapshot
}

type fakeStockRepo struct {
	store *fakeStockStore
}

var _ repository.StockRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) Get(warehouseID int, productIDs []string) (map[string]*entity.Stock, error) {
	result := make(map[string]*entity.Stock)
	for _, id := range productIDs {
		if e := r.store.find(id, warehouseID); e != nil {
			result[id] = e
		}
	}
	return result, nil
}

func (r *fakeStockRepo) GetAllByWarehouse(warehouseID int) ([]*entity.Stock, error) {
	var result []*entity.Stock
	for _, e := range r.store.entries {
		if e.WarehouseID == warehouseID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeStockRepo) GetForUpdate(productID string, warehouseID int) (*entity.Stock, error) {
	e := r.store.find(productID, warehouseID)
	if e == nil {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (r *fakeStockRepo) Upsert(stock *entity.Stock) error {
	if r.store.failUpsertFor[stock.ProductID] {
		return errors.New("write stock: connection reset")
	}
	r.store.set(stock.ProductID, stock.WarehouseID, stock.Held)
	return nil
}

type fakeProductRepo struct {
	byGtin map[string]*entity.Product
	byID   map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		byGtin: make(map[string]*entity.Product),
		byID:   make(map[string]*entity.Product),
	}
	for _, p := range products {
		r.byGtin[p.Gtin] = p
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.byGtin[product.Gtin] = product
	r.byID[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) GetByGtin(gtin string) (*entity.Product, error) {
	return r.byGtin[gtin], nil
}

func (r *fakeProductRepo) GetByGtins(gtins []string) (map[string]*entity.Product, error) {
	result := make(map[string]*entity.Product)
	for _, gtin := range gtins {
		if p, ok := r.byGtin[gtin]; ok {
			result[gtin] = p
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Discontinue(gtin string) (bool, error) {
	p, ok := r.byGtin[gtin]
	if !ok {
		return false, nil
	}
	p.Discontinued = true
	return true, nil
}

type fakeCompanyRepo struct {
	byGcp map[string]*entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{byGcp: make(map[string]*entity.Company)}
	for _, c := range companies {
		r.byGcp[c.Gcp] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(company *entity.Company) error {
	r.byGcp[company.Gcp] = company
	return nil
}

func (r *fakeCompanyRepo) GetByGcp(gcp string) (*entity.Company, error) {
	return r.byGcp[gcp], nil
}

func (r *fakeCompanyRepo) GetByGcps(gcps []string) (map[string]*entity.Company, error) {
	result := make(map[string]*entity.Company)
	for _, gcp := range gcps {
		if c, ok := r.byGcp[gcp]; ok {
			result[gcp] = c
		}
	}
	return result, nil
}

type fakeEmployeeRepo struct {
	employees []*entity.Employee
}

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func newFakeEmployeeRepo(employees ...*entity.Employee) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: employees}
}

func (r *fakeEmployeeRepo) Create(employee *entity.Employee) error {
	r.employees = append(r.employees, employee)
	return nil
}

func (r *fakeEmployeeRepo) GetByName(name string) ([]*entity.Employee, error) {
	var result []*entity.Employee
	for _, e := range r.employees {
		if e.Name == name {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) GetByWarehouse(warehouseID int) ([]*entity.Employee, error) {
	var result []*entity.Employee
	for _, e := range r.employees {
		if e.WarehouseID == warehouseID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) GetOperationsManager(warehouseID int) (*entity.Employee, error) {
	for _, e := range r.employees {
		if e.WarehouseID == warehouseID && e.Role == entity.RoleOperationsManager {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Remove(name string) (bool, error) {
	for i, e := range r.employees {
		if e.Name == name {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeTxRunner struct {
	store    *fakeStockStore
	products *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.store.snapshot()
	if err := fn(&fakeStockRepo{store: r.store}, r.products); err != nil {
		r.store.restore(snapshot)
		return err
	}
	return nil
}
