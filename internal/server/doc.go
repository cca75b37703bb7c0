// Package server exposes the analysis pipeline and the store over HTTP.
//
// Routes:
//
//	GET    /health
//	POST   /analyses
//	GET    /analyses
//	GET    /analyses/{id}
//	GET    /analyses/{id}/findings.csv
//	DELETE /analyses/{id}
//
// Errors are JSON api.ErrorV1 bodies.
package server
