// Package kql models Kirby Query Language request and response documents.
//
// A request carries a query string, an optional field-selection tree and
// optional pagination; a response carries the status envelope and the raw
// result payload. The package validates documents against the query
// grammar (see the query package) and loads them from JSON or YAML. It is
// a passive data contract: issuing requests against a CMS endpoint is the
// caller's concern and no transport lives here.
package kql
