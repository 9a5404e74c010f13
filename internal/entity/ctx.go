package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyProfile CtxKey = iota
)

func CtxWithProfile(ctx context.Context, profile Profile) context.Context {
	return context.WithValue(ctx, CtxKeyProfile, profile)
}

// ProfileFromCtx returns the caller profile from context or
// ErrUnauthenticated if no profile is attached.
func ProfileFromCtx(ctx context.Context) (Profile, error) {
	profile, ok := ctx.Value(CtxKeyProfile).(Profile)
	if !ok {
		return profile, ErrUnauthenticated
	}

	return profile, nil
}
