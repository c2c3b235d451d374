package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the immutable record of a completed transaction. CartIDs lists
// the cart entries this payment settled; they share a key space with
// CartItem.ID but no storage-level constraint enforces it.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CartIDs       []primitive.ObjectID `bson:"cartIds" json:"cartIds"`
	ItemIDs       []string             `bson:"itemIds,omitempty" json:"itemIds,omitempty"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time            `bson:"date" json:"date"`
}

// CartItem is a purchasable entry in a user's pending cart, created by the
// cart-management flow and destroyed in bulk on settlement.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ItemID string             `bson:"itemId,omitempty" json:"itemId,omitempty"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Price  float64            `bson:"price" json:"price"`
	Email  string             `bson:"email,omitempty" json:"email,omitempty"`
}
