// Package apperr defines the error taxonomy shared by every feature.
//
// Services return errors classified by the exported sentinels; handlers
// hand them to Respond, which picks the HTTP status and keeps storage
// detail out of the response body.
package apperr
