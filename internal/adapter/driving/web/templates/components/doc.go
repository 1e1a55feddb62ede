// Package components holds the templ components the site pages are built from.
package components
