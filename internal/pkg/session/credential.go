package session

import "context"

// Credential is the bearer credential of one request. It travels in the
// request context and is read by the API client when the request is built.
type Credential struct {
	Token string
}

type credentialCtxKey struct{}

func WithCredential(ctx context.Context, cred Credential) context.Context {
	return context.WithValue(ctx, credentialCtxKey{}, cred)
}

func CredentialFrom(ctx context.Context) (Credential, bool) {
	if ctx == nil {
		return Credential{}, false
	}
	cred, ok := ctx.Value(credentialCtxKey{}).(Credential)
	return cred, ok && cred.Token != ""
}
