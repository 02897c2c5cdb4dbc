package interaction

import (
	"context"
	"strconv"

	"github.com/gigmarket/billing-service/internal/restapi/common"
)

// Session describes who is making the request: a logged in marketplace user
// identified by the subject claim of their token, or a service-to-service
// call authenticated with the fixed API token.
type Session struct {
	userID         uint
	isAPITokenCall bool
}

func (s *Session) UserID() uint {
	return s.userID
}

func (s *Session) IsUser() bool {
	return s.userID != 0
}

func (s *Session) IsAPITokenCall() bool {
	return s.isAPITokenCall
}

func NewSession(ctx context.Context) *Session {
	session := &Session{}
	if _, ok := ctx.Value(common.CtxKeyAPIKey{}).(string); ok {
		session.isAPITokenCall = true
		return session
	}

	if claims, ok := ctx.Value(common.CtxKeyClaims{}).(*common.AllClaims); ok {
		id, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err == nil {
			session.userID = uint(id)
		}
	}

	return session
}
