package entity

import "time"

// ConnectionStatus is the sync state of a storefront integration.
type ConnectionStatus string

const (
	ConnectionActive  ConnectionStatus = "Activa"
	ConnectionSyncing ConnectionStatus = "Sincronizando"
	ConnectionError   ConnectionStatus = "Error"
)

var ValidConnectionStatuses = map[ConnectionStatus]bool{
	ConnectionActive:  true,
	ConnectionSyncing: true,
	ConnectionError:   true,
}

// PlatformShopify is the only storefront platform currently integrated.
const PlatformShopify = "Shopify"

// Connection is a linked external storefront.
type Connection struct {
	ID          string           `json:"id"`
	StoreName   string           `json:"storeName"`
	Platform    string           `json:"platform"`
	Status      ConnectionStatus `json:"status"`
	ConnectedAt time.Time        `json:"connectedAt"`
	LastSync    time.Time        `json:"lastSync"`
}

// ConnectionUpdate is a partial update of a connection.
type ConnectionUpdate struct {
	Status   *ConnectionStatus
	LastSync *time.Time
}
