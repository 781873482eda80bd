package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

const (
	defaultAdminPassword       = "admin123"
	defaultDropshipperPassword = "dropship123"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func seedProducts(now time.Time) []entity.Product {
	return []entity.Product{
		{
			ID:             "PRD-101",
			Name:           "Faja Reductora Post Parto",
			Category:       "Salud y Belleza",
			Provider:       "FitLine Bogotá",
			Cost:           dec(18),
			SuggestedPrice: dec(39.99),
			Stock:          230,
			ShippingTime:   "24h",
			UpdatedAt:      daysAgo(now, 1),
			Rating:         dec(4.7),
		},
		{
			ID:             "PRD-205",
			Name:           "Set de brochas profesionales 12p",
			Category:       "Belleza",
			Provider:       "GlamSupply Lima",
			Cost:           dec(9.5),
			SuggestedPrice: dec(24.99),
			Stock:          560,
			ShippingTime:   "48h",
			UpdatedAt:      daysAgo(now, 2),
			Rating:         dec(4.8),
		},
		{
			ID:             "PRD-314",
			Name:           "Zapatillas Urbanas StreetFlow",
			Category:       "Calzado",
			Provider:       "StreetKicks Santiago",
			Cost:           dec(22),
			SuggestedPrice: dec(49.99),
			Stock:          140,
			ShippingTime:   "72h",
			UpdatedAt:      daysAgo(now, 4),
			Rating:         dec(4.5),
		},
		{
			ID:             "PRD-407",
			Name:           "Licuadora Portátil SmoothGo",
			Category:       "Electrodomésticos",
			Provider:       "HomeTech Medellín",
			Cost:           dec(16),
			SuggestedPrice: dec(34.99),
			Stock:          320,
			ShippingTime:   "48h",
			UpdatedAt:      daysAgo(now, 1),
			Rating:         dec(4.6),
		},
	}
}

func seedOrders(now time.Time) []entity.Order {
	return []entity.Order{
		{
			ID:            "ORD-9001",
			Store:         "SofiFit Store",
			Product:       "Faja Reductora Post Parto",
			Customer:      "Laura Reyes",
			CreatedAt:     daysAgo(now, 1),
			Status:        entity.OrderPending,
			PaymentMethod: entity.PaymentMethodCard,
			Cost:          dec(18),
			ShippingCost:  dec(5.5),
			SalePrice:     dec(39.99),
		},
		{
			ID:            "ORD-9002",
			Store:         "GlowUp Boutique",
			Product:       "Set de brochas profesionales 12p",
			Customer:      "Camila Vargas",
			CreatedAt:     daysAgo(now, 3),
			Status:        entity.OrderConfirmed,
			PaymentMethod: entity.PaymentMethodCard,
			Cost:          dec(9.5),
			ShippingCost:  dec(4),
			SalePrice:     dec(24.99),
			TrackingCode:  "CHL123456789",
		},
		{
			ID:            "ORD-9003",
			Store:         "UrbanStep",
			Product:       "Zapatillas Urbanas StreetFlow",
			Customer:      "Jorge Pérez",
			CreatedAt:     daysAgo(now, 5),
			Status:        entity.OrderDispatched,
			PaymentMethod: entity.PaymentMethodCOD,
			Cost:          dec(22),
			ShippingCost:  dec(6.5),
			SalePrice:     dec(49.99),
			TrackingCode:  "PER987654321",
		},
		{
			ID:            "ORD-9004",
			Store:         "DetoxLife",
			Product:       "Licuadora Portátil SmoothGo",
			Customer:      "Mariana Torres",
			CreatedAt:     daysAgo(now, 6),
			Status:        entity.OrderDelivered,
			PaymentMethod: entity.PaymentMethodCOD,
			Cost:          dec(16),
			ShippingCost:  dec(5),
			SalePrice:     dec(34.99),
			TrackingCode:  "COL456123789",
		},
		{
			ID:            "ORD-9005",
			Store:         "SofiFit Store",
			Product:       "Faja Reductora Post Parto",
			Customer:      "Dayana Castro",
			CreatedAt:     daysAgo(now, 2),
			Status:        entity.OrderRegisterPayment,
			PaymentMethod: entity.PaymentMethodCard,
			Cost:          dec(18),
			ShippingCost:  dec(5.5),
			SalePrice:     dec(39.99),
		},
	}
}

func seedMovements(now time.Time) []entity.Movement {
	return []entity.Movement{
		{
			ID:          "MOV-1001",
			Type:        entity.MovementIncome,
			Category:    entity.MovementTopUp,
			Description: "Recarga USDT - Binance",
			Amount:      dec(1500),
			Date:        daysAgo(now, 2),
		},
		{
			ID:          "MOV-1002",
			Type:        entity.MovementExpense,
			Category:    entity.MovementOrderConfirmation,
			Description: "ORD-9002 - Confirmación costo + envío",
			Amount:      dec(-13.5),
			Date:        daysAgo(now, 2),
		},
		{
			ID:          "MOV-1003",
			Type:        entity.MovementIncome,
			Category:    entity.MovementAccreditation,
			Description: "ORD-9004 - Pedido COD entregado",
			Amount:      dec(27.49),
			Date:        daysAgo(now, 1),
		},
		{
			ID:          "MOV-1004",
			Type:        entity.MovementExpense,
			Category:    entity.MovementShipping,
			Description: "Pago courier semana 32",
			Amount:      dec(-78.9),
			Date:        daysAgo(now, 4),
		},
		{
			ID:          "MOV-1005",
			Type:        entity.MovementExpense,
			Category:    entity.MovementCommission,
			Description: "Comisión plataforma - Agosto",
			Amount:      dec(-125.35),
			Date:        daysAgo(now, 7),
		},
	}
}

func seedWalletRequests(now time.Time) []entity.WalletRequest {
	processed := func(days int) *time.Time {
		t := daysAgo(now, days)
		return &t
	}
	return []entity.WalletRequest{
		{
			ID:        "REQ-501",
			Type:      entity.WalletDeposit,
			Status:    entity.WalletPending,
			Amount:    dec(1200),
			CreatedAt: daysAgo(now, 1),
			Reference: "TRX-9932ABCD",
		},
		{
			ID:          "REQ-502",
			Type:        entity.WalletWithdrawal,
			Status:      entity.WalletApproved,
			Amount:      dec(650),
			CreatedAt:   daysAgo(now, 4),
			ProcessedAt: processed(3),
			Reference:   "RET-5567XYZ",
		},
		{
			ID:          "REQ-503",
			Type:        entity.WalletDeposit,
			Status:      entity.WalletRejected,
			Amount:      dec(300),
			CreatedAt:   daysAgo(now, 6),
			ProcessedAt: processed(5),
			Reference:   "TRX-1099LMN",
		},
	}
}

func seedConnections(now time.Time) []entity.Connection {
	return []entity.Connection{
		{
			ID:          "CON-101",
			StoreName:   "SofiFit Store",
			Platform:    entity.PlatformShopify,
			Status:      entity.ConnectionActive,
			ConnectedAt: daysAgo(now, 90),
			LastSync:    now.Add(-5 * time.Hour),
		},
		{
			ID:          "CON-102",
			StoreName:   "GlowUp Boutique",
			Platform:    entity.PlatformShopify,
			Status:      entity.ConnectionSyncing,
			ConnectedAt: daysAgo(now, 45),
			LastSync:    daysAgo(now, 1),
		},
		{
			ID:          "CON-103",
			StoreName:   "UrbanStep",
			Platform:    entity.PlatformShopify,
			Status:      entity.ConnectionError,
			ConnectedAt: daysAgo(now, 30),
			LastSync:    daysAgo(now, 3),
		},
	}
}

func seedUsers(cfg Config, hashPassword func(string) (string, error)) ([]entity.User, error) {
	dropshipperHash, err := hashPassword(cfg.DropshipperPassword)
	if err != nil {
		return nil, err
	}
	adminHash, err := hashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return []entity.User{
		{
			ID:           "USR-100",
			Name:         "Sofía Martínez",
			Email:        "sofia@latinecom.com",
			PasswordHash: dropshipperHash,
			Role:         entity.RoleDropshipper,
		},
		{
			ID:           "USR-101",
			Name:         "Ana González",
			Email:        "ana@latinecom.com",
			PasswordHash: adminHash,
			Role:         entity.RoleAdmin,
		},
	}, nil
}
