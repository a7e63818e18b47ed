package handlers

import (
	"hathive/internal/repos"
	"hathive/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CustomerHandler  *CustomerHandler
	HatHandler       *HatHandler
	OrderHandler     *OrderHandler
	BillHandler      *BillHandler
	AdminHandler     *AdminHandler
	InventoryHandler *InventoryHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	custRepo := repos.NewCustomerRepo(db)
	hatRepo := repos.NewHatRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	billRepo := repos.NewBillRepo(db)

	invSvc := services.NewInventoryService(hatRepo)
	orderSvc := services.NewOrderService(db, custRepo, hatRepo, orderRepo, billRepo)

	return &Deps{
		CustomerHandler:  &CustomerHandler{Customers: custRepo},
		HatHandler:       &HatHandler{Hats: hatRepo},
		OrderHandler:     &OrderHandler{Order: orderSvc, Repo: orderRepo},
		BillHandler:      &BillHandler{Bills: billRepo},
		AdminHandler:     &AdminHandler{DB: db},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
	}
}
