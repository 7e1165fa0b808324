// Package errors provides structured error handling for hensei-transfer.
//
// Errors carry a Code, a message, optional metadata, and an optional wrapped
// cause. Codes map the failure taxonomy used across the project:
//
//   - FailedPrecondition / Unauthenticated: detected before any remote
//     mutation is issued; surfaced to the user, no side effects.
//   - NotFound: an entity lookup miss. Callers that treat misses as
//     skippable handle this internally; it never reaches the user.
//   - AlreadyExists: a grid slot conflict reported by the remote service,
//     recovered automatically by the API client.
//   - Unavailable / Internal: unrecovered transport or service failures;
//     fatal for the whole import.
//
// Remote HTTP responses are classified into codes via FromHTTPStatus.
package errors
