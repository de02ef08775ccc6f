package common

// AuthTokenHeaderName is the HTTP header used to carry the signed identity
// token on protected requests. The client sends the token literally, without
// a scheme prefix.
const AuthTokenHeaderName = "auth-token"
