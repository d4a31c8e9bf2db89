package auth

import (
	"context"
	"strconv"
	"time"

	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"
)

// JwtMiddleware verifies the access tokens minted by the identity service.
var JwtMiddleware *jwt.HertzJWTMiddleware

type Options struct {
	Secret  string
	Realm   string
	Timeout time.Duration
}

// Init builds JwtMiddleware.
func Init(opts Options) error {
	mw, err := New(opts)
	if err != nil {
		return err
	}
	JwtMiddleware = mw
	return nil
}

// New builds a verifier for HS256 tokens whose "id" claim is the user id as
// a decimal string. This service never logs anyone in, so no Authenticator
// is configured.
func New(opts Options) (*jwt.HertzJWTMiddleware, error) {
	if opts.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 24 * time.Hour
	}
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:            opts.Realm,
		SigningAlgorithm: "HS256",
		Key:              []byte(opts.Secret),
		Timeout:          opts.Timeout,
		IdentityKey:      constants.IdentityKey,
		TokenLookup:      "header: Authorization",
		TokenHeadName:    "Bearer",
		TimeFunc:         time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if id, ok := data.(int64); ok {
				return jwt.MapClaims{constants.IdentityKey: strconv.FormatInt(id, 10)}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[constants.IdentityKey])
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			id, ok := data.(int64)
			return ok && id > 0
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			response.SendError(ctx, c, errno.AuthErr)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "init jwt middleware")
	}
	return mw, nil
}

// GenerateToken signs an access token for userID.
func GenerateToken(mw *jwt.HertzJWTMiddleware, userID int64) (string, error) {
	token, _, err := mw.TokenGenerator(userID)
	if err != nil {
		return "", errors.Wrap(err, "generate token")
	}
	return token, nil
}

// UserID is the authenticated requester, 0 when the request is anonymous.
func UserID(c *app.RequestContext) int64 {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0
	}
	return id
}
