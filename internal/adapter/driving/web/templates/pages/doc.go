// Package pages holds the full-page templ components.
package pages
