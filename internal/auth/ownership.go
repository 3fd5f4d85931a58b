package auth

import "epicevents/internal/models"

// Ownership predicates. A nil foreign key never matches: an orphaned record
// (its responsible user was deleted) is owned by nobody.

// SellerOwnsClient reports whether the acting user is the client's sale contact.
func SellerOwnsClient(claims *Claims, client *models.Client) bool {
	if claims == nil || client == nil || client.SaleContactID == nil {
		return false
	}
	return *client.SaleContactID == claims.UserID
}

// SellerOwnsContract reports whether the acting user is the contract's sales contact.
func SellerOwnsContract(claims *Claims, contract *models.Contract) bool {
	if claims == nil || contract == nil || contract.SalesContactID == nil {
		return false
	}
	return *contract.SalesContactID == claims.UserID
}

// SupportAssignedToEvent reports whether the acting user is the event's
// support contact. Assignment, not role, is what grants event mutation.
func SupportAssignedToEvent(claims *Claims, event *models.Event) bool {
	if claims == nil || event == nil || event.SupportContactID == nil {
		return false
	}
	return *event.SupportContactID == claims.UserID
}
