// Package service exposes the codec over HTTP: encode, decode, and table
// inspection endpoints plus health and Prometheus metrics. The active codec
// is held behind an atomic pointer so table reloads swap it without pausing
// in-flight requests; a reload that fails validation keeps the previous
// table serving.
package service
