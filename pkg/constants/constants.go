package constants

const (
	ServiceName = "vidtube-api"
	APIPrefix   = "/api/v1"

	IdentityKey = "id"

	VideoBucket   = "video"
	PictureBucket = "picture"

	MaxCommentLength = 500

	// LockExpiry bounds how long a toggle may hold its per-key lock.
	LockExpirySecond = 5
)

const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
)
