package repository

import (
	"strings"

	"payroll/internal/domain"
	"payroll/pkg/logger"
)

// EmployeeRepository çalışan kayıtlarını ekleme sırasına göre bellekte tutar.
// Kimlik sayacı depoya aittir; 0'dan başlar ve her tahsiste bir artar,
// silinen kimlikler yeniden kullanılmaz.
type EmployeeRepository struct {
	employees []domain.Employee
	nextID    int64
	logger    logger.Logger
}

func NewEmployeeRepository(logger logger.Logger) domain.EmployeeRepository {
	return &EmployeeRepository{
		employees: make([]domain.Employee, 0),
		logger:    logger,
	}
}

func (r *EmployeeRepository) NextID() int64 {
	r.nextID++
	return r.nextID
}

func (r *EmployeeRepository) Add(e domain.Employee) {
	r.employees = append(r.employees, e)
	r.logger.Debug("Çalışan kaydı eklendi", map[string]interface{}{"id": e.ID(), "type": string(e.Type())})
}

func (r *EmployeeRepository) Remove(id int64) bool {
	for i, e := range r.employees {
		if e.ID() == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			r.logger.Debug("Çalışan kaydı silindi", map[string]interface{}{"id": id})
			return true
		}
	}
	return false
}

func (r *EmployeeRepository) FindByID(id int64) (domain.Employee, bool) {
	for _, e := range r.employees {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// Boş arama metni tüm kayıtlarla eşleşir; karşılaştırma büyük/küçük harfe duyarsızdır.
func (r *EmployeeRepository) SearchByName(namePart string) []domain.Employee {
	lowered := strings.ToLower(namePart)

	result := make([]domain.Employee, 0)
	for _, e := range r.employees {
		if strings.Contains(strings.ToLower(e.Name()), lowered) {
			result = append(result, e)
		}
	}
	return result
}

func (r *EmployeeRepository) ListAll() []domain.Employee {
	result := make([]domain.Employee, len(r.employees))
	copy(result, r.employees)
	return result
}

func (r *EmployeeRepository) Count() int {
	return len(r.employees)
}
