// Package locales embeds the translation files served by the i18n
// middleware.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
