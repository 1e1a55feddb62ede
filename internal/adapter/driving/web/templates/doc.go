// Package templates holds the page layout shared by every full-page render.
// Views are written in templ; run `go tool templ generate` after editing a
// .templ file.
package templates
