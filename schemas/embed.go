// Package schemas embeds the JSON Schemas of the request bodies the API accepts.
package schemas

import "embed"

//go:embed requests
var SchemasFS embed.FS
