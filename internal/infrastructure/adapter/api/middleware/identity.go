package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerr "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/dto"
)

// AccountIDKey is the gin context key under which the authenticated
// account ID is stored
const AccountIDKey = "accountID"

// Identity middleware resolves the calling account from the X-Account-ID
// header and rejects requests without a valid one
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-Account-ID")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
				Message: "Missing required header: X-Account-ID",
			})
			return
		}

		accountID, err := uuid.Parse(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
				Message: "Invalid account ID format",
			})
			return
		}

		c.Set(AccountIDKey, accountID)
		c.Next()
	}
}

// AccountID extracts the authenticated account ID placed by the Identity
// middleware. The second return is false if the middleware did not run.
func AccountID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(AccountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	accountID, ok := value.(uuid.UUID)
	return accountID, ok
}
