// Package web embeds the templates and static assets served by the UI.
package web

import "embed"

// TemplatesFS holds the HTML templates rendered server-side.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds css and other static assets.
//
//go:embed static/*
var StaticFS embed.FS
