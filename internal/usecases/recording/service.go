// Package recording handles creation, update and deletion of the four record
// collections. Validation the original entry forms enforced client-side is
// enforced here instead.
package recording

import (
	"time"

	"github.com/pkg/errors"
	"github.com/talentbms/talent-bms-api/infrastructure/repository"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/pkg/utils"
)

type Recorder interface {
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	DeleteSale(id string) error

	CreatePost(post *domain.Post) (*domain.Post, error)
	DeletePost(id string) error

	ListProducts() ([]*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	DeleteProduct(id string) error

	ListTalents() ([]*domain.TalentReference, error)
	CreateTalent(talent *domain.TalentReference) (*domain.TalentReference, error)
	UpdateTalent(talent *domain.TalentReference) error
	DeleteTalent(id string) error
}

type Service struct {
	saleRepo    repository.SaleRepository
	postRepo    repository.PostRepository
	productRepo repository.ProductRepository
	talentRepo  repository.TalentRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	postRepo repository.PostRepository,
	productRepo repository.ProductRepository,
	talentRepo repository.TalentRepository,
) Recorder {
	return &Service{
		saleRepo:    saleRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
		talentRepo:  talentRepo,
	}
}

func (s *Service) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	if sale.Date == "" || sale.TalentName == "" || sale.AccountName == "" {
		return nil, ErrMissingRequiredData
	}

	if err := validateDate(sale.Date); err != nil {
		return nil, err
	}

	// Exactly one of GMV/revenue is meaningful per kind; the other is
	// forced to zero so aggregation never double-counts.
	switch sale.Kind {
	case domain.SaleKindGeneral:
		sale.Revenue = 0
		sale.ProductID = ""
	case domain.SaleKindContent:
		sale.GMV = 0
	default:
		return nil, ErrInvalidSaleKind
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	sale.ID = id
	sale.CreatedAt = time.Now().UTC()

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *Service) DeleteSale(id string) error {
	if id == "" {
		return ErrRecordIDRequired
	}
	return s.saleRepo.Delete(id)
}

func (s *Service) CreatePost(post *domain.Post) (*domain.Post, error) {
	if post.Date == "" || post.TalentName == "" || post.AccountName == "" || post.Link == "" {
		return nil, ErrMissingRequiredData
	}

	if err := validateDate(post.Date); err != nil {
		return nil, err
	}

	if !domain.ValidPlatform(post.Platform) {
		return nil, ErrInvalidPlatform
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	post.ID = id
	post.CreatedAt = time.Now().UTC()

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) DeletePost(id string) error {
	if id == "" {
		return ErrRecordIDRequired
	}
	return s.postRepo.Delete(id)
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.List()
}

func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, ErrMissingRequiredData
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	product.ID = id
	product.CreatedAt = time.Now().UTC()

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) UpdateProduct(product *domain.Product) error {
	if product.ID == "" {
		return ErrRecordIDRequired
	}
	if product.Name == "" {
		return ErrMissingRequiredData
	}
	return s.productRepo.Update(product)
}

func (s *Service) DeleteProduct(id string) error {
	if id == "" {
		return ErrRecordIDRequired
	}
	return s.productRepo.Delete(id)
}

func (s *Service) ListTalents() ([]*domain.TalentReference, error) {
	return s.talentRepo.List()
}

func (s *Service) CreateTalent(talent *domain.TalentReference) (*domain.TalentReference, error) {
	if talent.Name == "" {
		return nil, ErrMissingRequiredData
	}

	if talent.Accounts == nil {
		talent.Accounts = []string{}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	talent.ID = id

	if err := s.talentRepo.Create(talent); err != nil {
		return nil, err
	}

	return talent, nil
}

// UpdateTalent replaces the name and account list wholesale.
func (s *Service) UpdateTalent(talent *domain.TalentReference) error {
	if talent.ID == "" {
		return ErrRecordIDRequired
	}
	if talent.Name == "" {
		return ErrMissingRequiredData
	}

	if talent.Accounts == nil {
		talent.Accounts = []string{}
	}

	return s.talentRepo.Update(talent)
}

func (s *Service) DeleteTalent(id string) error {
	if id == "" {
		return ErrRecordIDRequired
	}
	return s.talentRepo.Delete(id)
}

func validateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
