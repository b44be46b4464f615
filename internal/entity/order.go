package entity

// Order is the order-creation payload sent to the order API. The remote
// system owns the order lifecycle after submission; ID is filled from the
// response and used only for the confirmation message.
type Order struct {
	ID           int         `json:"id,omitempty"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Notes        string      `json:"notes"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ShawarmaID int `json:"shawarmaId"`
	Quantity   int `json:"quantity"`
}
