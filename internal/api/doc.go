// Package api provides HTTP client functionality for communicating with the
// disposable-mail provider API. It handles request/response serialization,
// per-request bearer authentication, and automatic retry with backoff.
//
// # Authentication
//
// The client holds no token state. Authenticated endpoints take the bearer
// token as an explicit argument and attach it to that single request only;
// unauthenticated endpoints send no Authorization header at all.
//
// # Retry Behavior
//
// Every provider call is retried until its attempt budget is exhausted
// (default 3 attempts, 1s apart; account creation 5 attempts, 3s apart).
// A rate-limit failure (429) backs off exponentially, doubling the delay
// per attempt; any other failure waits the fixed base delay. No jitter is
// applied. When all attempts fail, a [RetryError] is returned carrying the
// attempt count and the last underlying error.
//
// # Error Handling
//
// HTTP error statuses map to sentinel errors checkable with errors.Is:
//
//   - [ErrBadRequest]: 400
//   - [ErrAuthenticationFailed]: 401
//   - [ErrForbidden]: 403
//   - [ErrInvalidAddressFormat]: 422
//   - [ErrRateLimited]: 429
//   - [ErrProviderServer]: any 5xx
//
// Transport failures are reported as [NetworkError]; responses whose body
// does not match the documented shape are reported as [ProtocolError].
package api
