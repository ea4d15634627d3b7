package content

import "embed"

// documentsFS embeds the filing document definitions. Each file under
// documents/ is one loadable document; the filename (without extension)
// is its name.
//
//go:embed documents/*.yaml
var documentsFS embed.FS
