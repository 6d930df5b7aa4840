package services

import (
	"context"
)

// External collaborators the services call out to. The concrete adapters live
// in utils; tests swap in fakes.

type PhotoUploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (key string, url string, err error)
	Delete(ctx context.Context, key string) error
}

type AddressGeocoder interface {
	Lookup(ctx context.Context, address string) (lat float64, lon float64)
}

// PhotoModerator screens an image before it is accepted. A nil moderator
// disables the check.
type PhotoModerator interface {
	Check(ctx context.Context, image []byte) error
}

type ResetMailer interface {
	SendResetEmail(ctx context.Context, to string, token string) error
}
