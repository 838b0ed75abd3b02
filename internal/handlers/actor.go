package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/middleware"
)

// actorFrom builds the acting identity from whatever the auth middleware
// attached. guestEmail lets anonymous callers claim a guest booking.
func actorFrom(c *gin.Context, guestEmail string) domain.Actor {
	actor := domain.Actor{GuestEmail: guestEmail}

	if id, ok := c.Get(middleware.ContextUserID); ok {
		actor.ID = id.(uint)
		actor.Authenticated = true
	}
	if role, ok := c.Get(middleware.ContextUserRole); ok {
		actor.Role = role.(string)
	}
	if shopID, ok := c.Get(middleware.ContextShopID); ok {
		actor.ShopID = shopID.(*uint)
	}

	return actor
}
