package authfunc

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"
)

// Auth guards a route group: a missing, expired or malformed bearer token
// ends the request with a 401 envelope before any handler runs.
func Auth(mw *jwt.HertzJWTMiddleware) []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		mw.MiddlewareFunc(),
	)
}
