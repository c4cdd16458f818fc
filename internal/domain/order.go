package domain

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID      uuid.UUID
	OwnerID string
	Items   []CartItem
	Summary Summary

	CreatedAt time.Time
}
