package model

// Customer represents a rental customer as stored in the `customers` table.
//
// Fields:
//
//	ID     – primary key identifier.
//	Name   – customer name, 5 to 50 characters.
//	Phone  – contact phone, 5 to 50 characters.
//	IsGold – whether the customer is on the gold plan.
type Customer struct {
	ID     uint64 // customers.id
	Name   string // customers.name
	Phone  string // customers.phone
	IsGold bool   // customers.is_gold
}
