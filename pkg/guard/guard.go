package guard

import "VidTube.com/pkg/errno"

// Owned is anything with a single owning principal.
type Owned interface {
	OwnerRef() int64
}

// Authorize succeeds only when requester is exactly the owner of entity.
// A nil entity or a requester id <= 0 is always refused, so a zero owner
// never matches an unset caller.
func Authorize(requester int64, entity Owned) error {
	if entity == nil || requester <= 0 || entity.OwnerRef() != requester {
		return errno.ForbiddenErr
	}
	return nil
}

// AuthorizeWith is Authorize with a caller supplied forbidden message.
func AuthorizeWith(requester int64, entity Owned, msg string) error {
	if err := Authorize(requester, entity); err != nil {
		return errno.ForbiddenErr.WithMessage(msg)
	}
	return nil
}
