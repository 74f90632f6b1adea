// Package contract checks outbound quote requests against the OpenAPI
// description of the freight request endpoint before they are sent.
package contract
