// Package i18n provides the localized string table used by the quote wizard.
// The catalog is bundled as YAML and injected into step views as a read-only
// Translator; nothing in the wizard core reads it through a global.
package i18n
