package services

import (
	"errors"

	"hathive/internal/domain"
	"hathive/internal/repos"
)

type InventoryService struct {
	Hats *repos.HatRepo
}

func NewInventoryService(hats *repos.HatRepo) *InventoryService {
	return &InventoryService{Hats: hats}
}

// CheckAvailability converts stock into IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *InventoryService) CheckAvailability(hatID int64) (domain.Availability, error) {
	qty, err := s.Hats.Stock(hatID)
	if err != nil {
		// An unknown hat reads as nothing to sell.
		if errors.Is(err, domain.ErrHatNotFound) {
			return domain.Availability{Status: "OUT_OF_STOCK", Qty: 0}, nil
		}
		return domain.Availability{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case qty >= 5:
		status = "IN_STOCK"
	case qty > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: qty}, nil
}
